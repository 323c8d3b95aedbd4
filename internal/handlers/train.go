package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"sqlcoach/internal/contextutil"
	"sqlcoach/internal/engine"
)

// TrainHandler handles the four training endpoints. The route decides which
// training operation runs; the handler methods are registered individually.
type TrainHandler struct {
	engine engine.Engine
}

// NewTrainHandler creates a new TrainHandler.
func NewTrainHandler(eng engine.Engine) *TrainHandler {
	return &TrainHandler{engine: eng}
}

// TrainDDLRequest is the payload for POST /train/ddl.
type TrainDDLRequest struct {
	DDL string `json:"ddl"`
}

// TrainDocumentationRequest is the payload for POST /train/documentation.
type TrainDocumentationRequest struct {
	Documentation string `json:"documentation"`
}

// TrainQuestionSQLRequest is the payload for POST /train/question-sql.
type TrainQuestionSQLRequest struct {
	Question string `json:"question"`
	SQL      string `json:"sql"`
}

// Auto handles POST /train/auto.
func (h *TrainHandler) Auto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tables, err := h.engine.TrainAuto(ctx)
	if err != nil {
		logEngineError(ctx, "auto-training failed", err)
		writeStatus(w, engineErrorStatus(err), "error", err.Error())
		return
	}
	writeStatus(w, http.StatusOK, "success", fmt.Sprintf("auto-training completed for %d tables", tables))
}

// DDL handles POST /train/ddl.
func (h *TrainHandler) DDL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req TrainDDLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeStatus(w, http.StatusBadRequest, "error", "Invalid request body")
		return
	}
	if req.DDL == "" {
		writeStatus(w, http.StatusBadRequest, "error", "DDL statement required")
		return
	}

	if err := h.engine.TrainDDL(ctx, req.DDL); err != nil {
		logEngineError(ctx, "ddl training failed", err)
		writeStatus(w, engineErrorStatus(err), "error", err.Error())
		return
	}
	writeStatus(w, http.StatusOK, "success", "DDL training completed")
}

// Documentation handles POST /train/documentation.
func (h *TrainHandler) Documentation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req TrainDocumentationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeStatus(w, http.StatusBadRequest, "error", "Invalid request body")
		return
	}
	if req.Documentation == "" {
		writeStatus(w, http.StatusBadRequest, "error", "Documentation content required")
		return
	}

	if err := h.engine.TrainDocumentation(ctx, req.Documentation); err != nil {
		logEngineError(ctx, "documentation training failed", err)
		writeStatus(w, engineErrorStatus(err), "error", err.Error())
		return
	}
	writeStatus(w, http.StatusOK, "success", "Documentation training completed")
}

// QuestionSQL handles POST /train/question-sql.
func (h *TrainHandler) QuestionSQL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req TrainQuestionSQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeStatus(w, http.StatusBadRequest, "error", "Invalid request body")
		return
	}
	if req.Question == "" || req.SQL == "" {
		writeStatus(w, http.StatusBadRequest, "error", "Both question and sql are required")
		return
	}

	if err := h.engine.TrainQuestionSQL(ctx, req.Question, req.SQL); err != nil {
		logEngineError(ctx, "question-sql training failed", err)
		writeStatus(w, engineErrorStatus(err), "error", err.Error())
		return
	}
	writeStatus(w, http.StatusOK, "success", "Question-SQL training completed")
}
