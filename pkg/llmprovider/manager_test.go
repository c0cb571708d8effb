package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockProvider struct {
	name      string
	failTimes int // fail this many calls before succeeding; -1 fails forever
	err       error
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("mock provider error")
	}
	return &Response{
		Content:      Message{Role: RoleAssistant, Content: "  hello from " + m.name + "\n"},
		ProviderName: m.name,
		ModelName:    m.name + "-model",
		Usage:        Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name         string
		providers    []*mockProvider
		fallback     bool
		wantProvider string
		wantErr      error
		wantCalls    []int
		wantWarns    int
	}{
		{
			name:         "primary succeeds",
			providers:    []*mockProvider{{name: "primary"}, {name: "secondary"}},
			fallback:     true,
			wantProvider: "primary",
			wantCalls:    []int{1, 0},
		},
		{
			name:         "primary succeeds on retry",
			providers:    []*mockProvider{{name: "primary", failTimes: 1}},
			fallback:     true,
			wantProvider: "primary",
			wantCalls:    []int{2},
		},
		{
			name:         "fallback to secondary",
			providers:    []*mockProvider{{name: "primary", failTimes: -1}, {name: "secondary"}},
			fallback:     true,
			wantProvider: "secondary",
			wantCalls:    []int{2, 1},
			wantWarns:    1,
		},
		{
			name:      "all providers fail",
			providers: []*mockProvider{{name: "primary", failTimes: -1}, {name: "secondary", failTimes: -1}},
			fallback:  true,
			wantErr:   ErrAllProvidersFailed,
			wantCalls: []int{2, 2},
			wantWarns: 2,
		},
		{
			name:      "no fallback when disabled",
			providers: []*mockProvider{{name: "primary", failTimes: -1}, {name: "secondary"}},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: []int{2, 0},
			wantWarns: 1,
		},
		{
			name:      "invalid request is not retried",
			providers: []*mockProvider{{name: "primary", failTimes: -1, err: ErrInvalidRequest}},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: []int{1},
			wantWarns: 1,
		},
		{
			name:    "no providers configured",
			wantErr: ErrNoProvidersConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := make([]Provider, len(tt.providers))
			for i, p := range tt.providers {
				providers[i] = p
			}
			logger := &mockLogger{}
			manager := NewManager(providers, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   2,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := manager.GenerateContent(context.Background(), NewPrompt("sys", "Hello"))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("provider = %s, want %s", resp.ProviderName, tt.wantProvider)
				}
				if len(logger.infoMessages) != 1 {
					t.Errorf("info logs = %d, want 1", len(logger.infoMessages))
				}
			}

			for i, want := range tt.wantCalls {
				if got := tt.providers[i].callCount; got != want {
					t.Errorf("provider %s calls = %d, want %d", tt.providers[i].name, got, want)
				}
			}
			if len(logger.warnMessages) != tt.wantWarns {
				t.Errorf("warn logs = %d, want %d", len(logger.warnMessages), tt.wantWarns)
			}
		})
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", failTimes: -1}
	manager := NewManager([]Provider{slow}, &Config{
		RetryAttempts:   5,
		RetryDelay:      time.Second,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), NewPrompt("", "Hello"))
	if err == nil {
		t.Fatal("expected error")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("took %v, global timeout not applied", elapsed)
	}
	if slow.callCount != 1 {
		t.Errorf("calls = %d, want 1", slow.callCount)
	}
}

func TestGenerate_TrimsText(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "p"}}, &Config{RetryAttempts: 1}, &mockLogger{})
	got, err := manager.Generate(context.Background(), "sys", "hi")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hello from p" {
		t.Errorf("Generate() = %q", got)
	}
}
