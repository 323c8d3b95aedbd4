package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"sqlcoach/internal/contextutil"
)

// StatusResponse is the envelope every training endpoint returns.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeStatus writes the status envelope used by the training endpoints.
func writeStatus(w http.ResponseWriter, statusCode int, status, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(StatusResponse{Status: status, Message: message})
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// engineErrorStatus maps engine errors to HTTP status codes: vector store
// failures to 503, LLM/embedding failures to 502, everything else to 500.
func engineErrorStatus(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "vector") || strings.Contains(msg, "qdrant") ||
		strings.Contains(msg, "failed to search") {
		return http.StatusServiceUnavailable
	}
	if strings.Contains(msg, "embed") || strings.Contains(msg, "llm") ||
		strings.Contains(msg, "completion") {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// logEngineError logs an engine failure with the request-scoped logger.
func logEngineError(ctx context.Context, msg string, err error) {
	contextutil.LoggerFromContext(ctx).ErrorContext(ctx, msg, "error", err)
}
