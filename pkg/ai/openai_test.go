package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func newOpenAITestServer(t *testing.T, status int, body string, seen *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestOpenAIClientSend_Success(t *testing.T) {
	var seen map[string]any
	ts := newOpenAITestServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-4o-mini",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"summary\":\"ok\"}"}, "finish_reason": "stop"}]
	}`, &seen)
	defer ts.Close()

	client := NewOpenAIClient(
		&config.OpenAIConfig{APIKey: "sk-test", BaseURL: ts.URL + "/v1", Model: "gpt-4o-mini"},
		0,
		map[string]string{"manager": ProcessingPrompt},
	)

	res, err := client.Send(context.Background(), "Process this meeting", "manager")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if res.Response["result"] != `{"summary":"ok"}` {
		t.Fatalf("unexpected result slot %#v", res.Response["result"])
	}

	messages, _ := seen["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(messages))
	}
	system, _ := messages[0].(map[string]any)
	if system["content"] != ProcessingPrompt {
		t.Fatalf("expected processing prompt for manager target")
	}
}

func TestOpenAIClientSend_APIErrorIsReportedFailure(t *testing.T) {
	ts := newOpenAITestServer(t, http.StatusTooManyRequests,
		`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`, nil)
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "sk-test", BaseURL: ts.URL + "/v1"}, 0, nil)

	res, err := client.Send(context.Background(), "hi", "unknown-target")
	if err != nil {
		t.Fatalf("expected reported failure, got error %v", err)
	}
	if res.Success || res.Error != "Rate limit reached" {
		t.Fatalf("unexpected result %#v", res)
	}
}

func TestOpenAIClientSend_EmptyChoices(t *testing.T) {
	ts := newOpenAITestServer(t, http.StatusOK, `{"id":"x","choices":[]}`, nil)
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "sk-test", BaseURL: ts.URL + "/v1"}, 0, nil)

	res, err := client.Send(context.Background(), "hi", "a")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if res.Success {
		t.Fatalf("expected failure for empty choices")
	}
}
