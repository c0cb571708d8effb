package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"student-productivity/internal/user"
	repo "student-productivity/internal/user/repository"
)

// Register creates an account and signs the caller in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if tag := user.CheckPassword(input.Password, input.Username, input.Email); tag != "" {
		return user.AuthOutput{}, fmt.Errorf("%w: %s", user.ErrWeakPassword, user.PasswordPolicyTexts[tag])
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: input.Username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrUsernameTaken
	}

	existing, err = uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	cost := uc.hashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), cost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.issueToken(ctx, u)
}

func (uc *implUseCase) issueToken(ctx context.Context, u user.User) (user.AuthOutput, error) {
	token, exp, err := uc.jwtManager.CreateToken(u.ID, u.Username)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issueToken CreateToken: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{User: u, Token: token, ExpiresAt: exp}, nil
}
