package repository

type CreateUserOptions struct {
	Username     string
	Email        string
	PasswordHash string
}

// GetOneUserOptions filters a single user. Non-empty fields are ANDed;
// Login matches either username or email.
type GetOneUserOptions struct {
	ID       string
	Username string
	Email    string
	Login    string
}
