package user

import "time"

// User is a registered account.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput accepts either the username or the email as Login.
type LoginInput struct {
	Login    string
	Password string
}

// --- UseCase Outputs ---

type AuthOutput struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

type DetailOutput struct {
	User User
}
