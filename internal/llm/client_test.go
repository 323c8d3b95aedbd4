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

func TestChat(t *testing.T) {
	var gotReq ChatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s, want /v1/chat/completions", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "SELECT 1;"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", true)
	got, err := client.Chat(context.Background(), "You write SQL.", "How many customers?")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if got != "SELECT 1;" {
		t.Errorf("Chat() = %q, want %q", got, "SELECT 1;")
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("request model = %q, want test-model", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("request has %d messages, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != "You write SQL." {
		t.Errorf("first message = %+v, want system message", gotReq.Messages[0])
	}
	if gotReq.Messages[1].Role != "user" {
		t.Errorf("second message role = %q, want user", gotReq.Messages[1].Role)
	}
}

func TestChat_EmptySystemOmitted(t *testing.T) {
	var gotReq ChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotReq)
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model", true)
	if _, err := client.Chat(context.Background(), "", "hello"); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("messages = %+v, want single user message", gotReq.Messages)
	}
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		response string
		wantErr  string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, "bad status 500"},
		{"no choices", http.StatusOK, `{"choices": []}`, "no choices"},
		{"invalid json", http.StatusOK, `{broken`, "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewClient(server.URL, "key", "model", true)
			_, err := client.Chat(context.Background(), "sys", "user")
			if err == nil {
				t.Fatal("Chat() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Chat() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
