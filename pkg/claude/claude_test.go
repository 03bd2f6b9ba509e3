package claude_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"layover-os/pkg/claude"
)

func TestGenerateContent(t *testing.T) {
	var gotBody map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Try the Centurion Lounge near gate B5."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 30, "output_tokens": 10}
		}`))
	}))
	defer ts.Close()

	client, err := claude.New(claude.Config{APIKey: "test-key", Model: "claude-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &claude.Request{
		System:      "You are LayoverOS.",
		Messages:    []claude.Message{{Role: "user", Content: "lounge?"}},
		Temperature: 0.3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Text, "Centurion") {
		t.Errorf("unexpected text: %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 40 {
		t.Errorf("expected 40 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if gotBody["model"] != "claude-test" {
		t.Errorf("unexpected model in request: %v", gotBody["model"])
	}
	if _, ok := gotBody["system"]; !ok {
		t.Error("expected system prompt in request")
	}
	if client.Model() != "claude-test" {
		t.Errorf("unexpected model %q", client.Model())
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := claude.New(claude.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	}))
	defer ts.Close()

	client, _ := claude.New(claude.Config{APIKey: "k", BaseURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), &claude.Request{
		Messages: []claude.Message{{Role: "user", Content: "hi"}},
	}); err == nil {
		t.Fatal("expected error")
	}
}
