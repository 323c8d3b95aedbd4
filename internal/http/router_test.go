package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"sqlcoach/internal/engine"
	enginemocks "sqlcoach/internal/engine/mocks"
	vectormocks "sqlcoach/internal/vectorstore/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *enginemocks.MockEngine, *vectormocks.MockVectorStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	eng := enginemocks.NewMockEngine(ctrl)
	store := vectormocks.NewMockVectorStore(ctrl)

	router := NewRouter(&Deps{
		Engine:         eng,
		VectorStore:    store,
		CollectionName: "training",
	})
	return router, eng, store
}

func TestRouter_Routes(t *testing.T) {
	router, eng, store := newTestRouter(t)

	eng.EXPECT().TrainAuto(gomock.Any()).Return(3, nil)
	eng.EXPECT().TrainDDL(gomock.Any(), "CREATE TABLE t (id INT);").Return(nil)
	eng.EXPECT().TrainDocumentation(gomock.Any(), "docs").Return(nil)
	eng.EXPECT().TrainQuestionSQL(gomock.Any(), "q", "SELECT 1;").Return(nil)
	eng.EXPECT().Ask(gomock.Any(), "q").Return(engine.AskResponse{SQL: "SELECT 1;"}, nil)
	store.EXPECT().CollectionExists(gomock.Any(), "training").Return(true, nil)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{"train auto", http.MethodPost, "/train/auto", "", http.StatusOK},
		{"train ddl", http.MethodPost, "/train/ddl", `{"ddl":"CREATE TABLE t (id INT);"}`, http.StatusOK},
		{"train documentation", http.MethodPost, "/train/documentation", `{"documentation":"docs"}`, http.StatusOK},
		{"train question-sql", http.MethodPost, "/train/question-sql", `{"question":"q","sql":"SELECT 1;"}`, http.StatusOK},
		{"query", http.MethodPost, "/query", `{"question":"q"}`, http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.wantCode)
			}
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want 404", rec.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/train/ddl", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /train/ddl status = %d, want 405", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("OPTIONS /query status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("OPTIONS /query missing Access-Control-Allow-Origin header")
	}
}
