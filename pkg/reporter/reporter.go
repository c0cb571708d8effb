package reporter

import (
	"context"

	"github.com/rollbar/rollbar-go"

	"student-productivity/pkg/scope"
)

// Reporter forwards unexpected errors to an external tracker.
type Reporter interface {
	Report(ctx context.Context, err error, extras map[string]any)
	Close() error
}

// Config configures the Rollbar reporter.
type Config struct {
	Token       string
	Environment string
	CodeVersion string
	ServerHost  string
}

type rollbarReporter struct {
	client *rollbar.Client
}

// New returns a Rollbar-backed Reporter, or a no-op one when no token is set.
func New(cfg Config) Reporter {
	if cfg.Token == "" {
		return Nop()
	}
	return &rollbarReporter{
		client: rollbar.New(cfg.Token, cfg.Environment, cfg.CodeVersion, cfg.ServerHost, ""),
	}
}

func (r *rollbarReporter) Report(ctx context.Context, err error, extras map[string]any) {
	if err == nil {
		return
	}
	if p, ok := scope.GetPayloadFromContext(ctx); ok {
		ctx = rollbar.NewPersonContext(ctx, &rollbar.Person{Id: p.UserID, Username: p.Username})
	}
	r.client.ErrorWithExtrasAndContext(ctx, rollbar.ERR, err, extras)
}

func (r *rollbarReporter) Close() error {
	return r.client.Close()
}

type nopReporter struct{}

// Nop returns a Reporter that drops everything.
func Nop() Reporter { return nopReporter{} }

func (nopReporter) Report(context.Context, error, map[string]any) {}
func (nopReporter) Close() error                                  { return nil }
