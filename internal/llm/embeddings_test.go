package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmbedTexts(t *testing.T) {
	var gotReq EmbeddingsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("path = %s, want /v1/embeddings", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"data": [
				{"embedding": [0.1, 0.2, 0.3]},
				{"embedding": [0.4, 0.5, 0.6]}
			]
		}`))
	}))
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "key", "embed-model", 3, true)
	got, err := client.EmbedTexts(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("EmbedTexts() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("EmbedTexts() returned %d vectors, want 2", len(got))
	}
	if len(got[0]) != 3 {
		t.Errorf("vector size = %d, want 3", len(got[0]))
	}
	if got[0][0] != float32(0.1) {
		t.Errorf("got[0][0] = %v, want 0.1", got[0][0])
	}
	if gotReq.Model != "embed-model" {
		t.Errorf("request model = %q, want embed-model", gotReq.Model)
	}
	if len(gotReq.Input) != 2 || gotReq.Input[0] != "first" {
		t.Errorf("request input = %v, want [first second]", gotReq.Input)
	}
}

func TestEmbedTexts_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		response string
		code     int
		wantErr  string
	}{
		{
			name:    "empty input",
			input:   nil,
			wantErr: "empty input",
		},
		{
			name:     "count mismatch",
			input:    []string{"a", "b"},
			response: `{"data": [{"embedding": [0.1, 0.2, 0.3]}]}`,
			code:     http.StatusOK,
			wantErr:  "expected 2 embeddings",
		},
		{
			name:     "size mismatch",
			input:    []string{"a"},
			response: `{"data": [{"embedding": [0.1, 0.2]}]}`,
			code:     http.StatusOK,
			wantErr:  "size 2, expected 3",
		},
		{
			name:     "server error",
			input:    []string{"a"},
			response: `{"error":"overloaded"}`,
			code:     http.StatusServiceUnavailable,
			wantErr:  "bad status 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewEmbeddingsClient(server.URL, "key", "embed-model", 3, true)
			_, err := client.EmbedTexts(context.Background(), tt.input)
			if err == nil {
				t.Fatal("EmbedTexts() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("EmbedTexts() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
