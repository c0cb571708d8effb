package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-productivity/config"
	"student-productivity/pkg/llmprovider"
	"student-productivity/pkg/log"
)

func newChatServer(t *testing.T, status int, body string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	var seen map[string]any
	srv := newChatServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-test",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Add GraphQL to your resume."}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19}
	}`, &seen)

	a := llmprovider.NewOpenAIAdapter("openai", "sk-test", "gpt-test", srv.URL+"/v1")
	resp, err := a.GenerateContent(context.Background(), llmprovider.NewPrompt("You are a career coach.", "Review this"))
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Text() != "Add GraphQL to your resume." {
		t.Errorf("Text() = %q", resp.Text())
	}
	if resp.Usage.TotalTokens != 19 || resp.ProviderName != "openai" || resp.ModelName != "gpt-test" {
		t.Errorf("unexpected response metadata: %+v", resp)
	}

	msgs, _ := seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message role = %v", first["role"])
	}
}

func TestOpenAIAdapter_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		srv := newChatServer(t, http.StatusUnauthorized, `{"error":{"message":"bad key","type":"invalid_request_error"}}`, nil)
		a := llmprovider.NewOpenAIAdapter("deepseek", "bad", "deepseek-chat", srv.URL+"/v1")
		_, err := a.GenerateContent(context.Background(), llmprovider.NewPrompt("", "hi"))
		var perr *llmprovider.ProviderError
		if !errors.As(err, &perr) || perr.Provider != "deepseek" {
			t.Errorf("error = %v, want ProviderError for deepseek", err)
		}
	})

	t.Run("no choices", func(t *testing.T) {
		srv := newChatServer(t, http.StatusOK, `{"id":"x","choices":[]}`, nil)
		a := llmprovider.NewOpenAIAdapter("openai", "k", "m", srv.URL+"/v1")
		_, err := a.GenerateContent(context.Background(), llmprovider.NewPrompt("", "hi"))
		if !errors.Is(err, llmprovider.ErrEmptyResponse) {
			t.Errorf("error = %v, want ErrEmptyResponse", err)
		}
	})

	t.Run("empty request", func(t *testing.T) {
		a := llmprovider.NewOpenAIAdapter("openai", "k", "m", "")
		if _, err := a.GenerateContent(context.Background(), &llmprovider.Request{}); !errors.Is(err, llmprovider.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k2", Model: "qwen-plus"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "k1", Model: "gpt-4o-mini"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "k3", Model: "deepseek-chat"},
			{Name: "mystery", Enabled: true, Priority: 4, APIKey: "k4", Model: "m"},
			{Name: "deepseek", Enabled: true, Priority: 5, Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}

	var names []string
	for _, p := range providers {
		names = append(names, p.Name())
	}
	if len(names) != 2 || names[0] != "openai" || names[1] != "qwen" {
		t.Errorf("providers = %v, want [openai qwen]", names)
	}

	_, err = llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{}, log.NewNop())
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("empty config error = %v", err)
	}
}

func TestManagerConfigFrom(t *testing.T) {
	got, err := llmprovider.ManagerConfigFrom(config.LLMConfig{FallbackEnabled: true, RetryDelay: "2s", MaxTotalTimeout: "30s"})
	if err != nil {
		t.Fatalf("ManagerConfigFrom: %v", err)
	}
	if got.RetryAttempts != 1 || got.RetryDelay.Seconds() != 2 || got.MaxTotalTimeout.Seconds() != 30 || !got.FallbackEnabled {
		t.Errorf("ManagerConfigFrom() = %+v", got)
	}
}
