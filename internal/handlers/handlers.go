package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"listings-bknd/internal/directory"

	"go.uber.org/zap"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(data)
}

// writeError maps a service error to a status code. The cause is logged,
// the client only sees msg.
func writeError(w http.ResponseWriter, logr *zap.Logger, err error, msg string, fields ...zap.Field) {
	if errors.Is(err, directory.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "not found",
		})
		return
	}

	logr.Error(msg, append(fields, zap.Error(err))...)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": msg,
	})
}
