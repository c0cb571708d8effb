package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"time"

	"student-productivity/config"
	"student-productivity/pkg/log"
)

// OpenAI-compatible endpoints for the providers we know by name.
var knownBaseURLs = map[string]string{
	"openai":   "",
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":  "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// InitializeProviders creates Provider instances from config.LLMConfig,
// sorted by priority with disabled providers filtered out. Providers that
// fail to initialize are skipped and logged.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s (priority %d): %v", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: every enabled provider failed to initialize", ErrNoProvidersConfigured)
	}
	return providers, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		known, ok := knownBaseURLs[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("unknown provider %s: base_url is required", cfg.Name)
		}
		baseURL = known
	}

	return NewOpenAIAdapter(cfg.Name, cfg.APIKey, cfg.Model, baseURL), nil
}

// ManagerConfigFrom converts the string durations of config.LLMConfig.
func ManagerConfigFrom(cfg config.LLMConfig) (*Config, error) {
	delay, err := config.ParseDuration(cfg.RetryDelay, time.Second)
	if err != nil {
		return nil, fmt.Errorf("retry delay: %w", err)
	}
	total, err := config.ParseDuration(cfg.MaxTotalTimeout, 0)
	if err != nil {
		return nil, fmt.Errorf("max total timeout: %w", err)
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   attempts,
		RetryDelay:      delay,
		MaxTotalTimeout: total,
	}, nil
}
