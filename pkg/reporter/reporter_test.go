package reporter_test

import (
	"context"
	"errors"
	"testing"

	"student-productivity/pkg/reporter"
)

func TestNew_WithoutTokenIsNop(t *testing.T) {
	r := reporter.New(reporter.Config{Environment: "test"})
	r.Report(context.Background(), errors.New("boom"), map[string]any{"path": "/x"})
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNew_WithToken(t *testing.T) {
	r := reporter.New(reporter.Config{Token: "test-token", Environment: "test", CodeVersion: "dev"})
	r.Report(context.Background(), nil, nil)
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
