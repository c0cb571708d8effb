package model_test

import (
	"context"
	"testing"

	"student-productivity/internal/model"
	"student-productivity/pkg/scope"
)

func TestScopeFromContext(t *testing.T) {
	if _, ok := model.ScopeFromContext(context.Background()); ok {
		t.Fatal("expected no scope on empty context")
	}

	ctx := scope.SetPayloadToContext(context.Background(), scope.Payload{UserID: "u-1", Username: "ada"})
	sc, ok := model.ScopeFromContext(ctx)
	if !ok || sc.UserID != "u-1" || sc.Username != "ada" {
		t.Errorf("ScopeFromContext() = %+v, %v", sc, ok)
	}
}

func TestIsProduction(t *testing.T) {
	if !model.IsProduction(model.EnvProduction) || model.IsProduction(model.EnvDevelopment) {
		t.Error("IsProduction mismatch")
	}
}
