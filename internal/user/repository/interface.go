package repository

import (
	"context"

	"student-productivity/internal/user"
)

// Repository is the data store for user accounts.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	// GetOneUser returns the zero User (ID == "") when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
