package usecase

import (
	"context"

	"student-productivity/internal/resume"
	"student-productivity/pkg/log"
)

// Generator produces free text from a system instruction and a prompt.
// *llmprovider.Manager satisfies it.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type implUseCase struct {
	gen Generator
	l   log.Logger
}

// New creates a resume UseCase. A nil gen always uses keyword-based advice.
func New(gen Generator, l log.Logger) resume.UseCase {
	return &implUseCase{gen: gen, l: l}
}
