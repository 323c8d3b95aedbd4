package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"sqlcoach/internal/vectorstore/mocks"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m *mocks.MockVectorStore)
		wantCode   int
		wantStatus string
	}{
		{
			name: "healthy",
			setupMock: func(m *mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "training").Return(true, nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
		},
		{
			name: "vector store unreachable",
			setupMock: func(m *mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "training").Return(false, errors.New("connection refused"))
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
		{
			name: "collection missing",
			setupMock: func(m *mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "training").Return(false, nil)
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockVectorStore(ctrl)
			tt.setupMock(store)
			handler := NewHealthHandler(store, "training")

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("ServeHTTP() status = %d, want %d", rec.Code, tt.wantCode)
			}

			var resp HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("ServeHTTP() health status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if resp.Checks["vector_store"] == "" {
				t.Error("ServeHTTP() response missing vector_store check")
			}
		})
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewHealthHandler(mocks.NewMockVectorStore(ctrl), "training")

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("ServeHTTP() status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
