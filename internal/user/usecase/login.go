package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"student-productivity/internal/model"
	"student-productivity/internal/user"
	repo "student-productivity/internal/user/repository"
)

// Login verifies credentials. Unknown users and wrong passwords return the
// same error.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Login: strings.TrimSpace(input.Login)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := uc.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		uc.l.Warnf(ctx, "uc.Login UpdateLastLogin: %v", err)
	}

	return uc.issueToken(ctx, u)
}

// Detail returns the caller's account.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (user.DetailOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if u.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: u}, nil
}
