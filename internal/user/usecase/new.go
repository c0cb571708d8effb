package usecase

import (
	"student-productivity/internal/user"
	"student-productivity/internal/user/repository"
	"student-productivity/pkg/log"
	"student-productivity/pkg/scope"
)

type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger
	hashCost   int
}

// New creates a user UseCase. hashCost is the bcrypt cost; zero means the
// bcrypt default.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger, hashCost int) user.UseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
		hashCost:   hashCost,
	}
}
