package handlers

import (
	"encoding/json"
	"net/http"

	"sqlcoach/internal/contextutil"
	"sqlcoach/internal/engine"
)

// QueryHandler handles natural-language query requests.
type QueryHandler struct {
	engine engine.Engine
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(eng engine.Engine) *QueryHandler {
	return &QueryHandler{engine: eng}
}

// QueryRequest is the payload for POST /query.
type QueryRequest struct {
	Question string `json:"question"`
}

// QueryResponse is the response for POST /query. Columns and Rows are only
// present when the service is configured to execute generated SQL.
type QueryResponse struct {
	SQL      string   `json:"sql"`
	Executed bool     `json:"executed"`
	Columns  []string `json:"columns,omitempty"`
	Rows     [][]any  `json:"rows,omitempty"`
}

// ServeHTTP handles HTTP requests for natural-language queries.
func (h *QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		logger.WarnContext(ctx, "empty question in request")
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	result, err := h.engine.Ask(ctx, req.Question)
	if err != nil {
		logEngineError(ctx, "query failed", err)
		writeError(w, engineErrorStatus(err), "Failed to process query")
		return
	}

	resp := QueryResponse{
		SQL:      result.SQL,
		Executed: result.Executed,
		Columns:  result.Columns,
		Rows:     result.Rows,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
