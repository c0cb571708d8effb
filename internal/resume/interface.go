package resume

import (
	"context"

	"student-productivity/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
}
