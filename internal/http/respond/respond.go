// Package respond writes API responses and the error envelope shared by
// handlers and middleware.
package respond

import (
	"encoding/json"
	"net/http"

	"blogapi/internal/apperr"

	"go.uber.org/zap"
)

type errorBody struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Error renders err as {success, statusCode, message}. Internal errors are
// logged with their cause.
func Error(w http.ResponseWriter, logger *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		logger.Error("Request failed", zap.Error(err))
	}
	status := kind.StatusCode()
	JSON(w, status, errorBody{
		Success:    false,
		StatusCode: status,
		Message:    apperr.Message(err),
	})
}
