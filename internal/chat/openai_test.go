package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdmze/advice-engine/pkg/types"
)

func newOpenAIServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := openaiAPIBase
	openaiAPIBase = srv.URL
	t.Cleanup(func() { openaiAPIBase = orig })
}

func TestOpenAIComplete(t *testing.T) {
	var gotReq completionRequest
	var gotAuth string
	newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"Stay consistent."}}]}`)
	})

	c := &OpenAIClient{Client: &http.Client{}, APIKey: "sk-test"}
	answer, err := c.Complete(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if answer != "Stay consistent." {
		t.Errorf("answer = %q", answer)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "gpt-4" {
		t.Errorf("Model = %q, want default", gotReq.Model)
	}
	if gotReq.MaxTokens != 1500 {
		t.Errorf("MaxTokens = %d, want default", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "user text" {
		t.Errorf("Messages = %+v", gotReq.Messages)
	}
}

func TestOpenAICompleteConfigOverrides(t *testing.T) {
	var gotReq completionRequest
	newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	})

	c := &OpenAIClient{
		Client: &http.Client{},
		Config: types.ChatConfig{Model: "gpt-4o-mini", MaxTokens: 300, Temperature: 0.2},
	}
	if _, err := c.Complete(context.Background(), "s", "u"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if gotReq.Model != "gpt-4o-mini" || gotReq.MaxTokens != 300 || gotReq.Temperature != 0.2 {
		t.Errorf("request = %+v", gotReq)
	}
}

func TestOpenAICompleteAPIError(t *testing.T) {
	newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	})

	c := &OpenAIClient{Client: &http.Client{}, APIKey: "bad"}
	_, err := c.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "completion API: invalid api key" {
		t.Errorf("err = %q", got)
	}
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	})

	c := &OpenAIClient{Client: &http.Client{}}
	if _, err := c.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
