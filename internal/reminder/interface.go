package reminder

import (
	"context"

	"student-productivity/internal/user"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// BuildDigest collects the urgent and overdue items of u.
	BuildDigest(ctx context.Context, u user.User) (Digest, error)
	// Run emails a digest to every user with something urgent or overdue.
	// A failure for one user does not stop the others.
	Run(ctx context.Context) (RunOutput, error)
}
