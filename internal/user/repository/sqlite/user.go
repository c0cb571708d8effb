package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"student-productivity/internal/user"
	repo "student-productivity/internal/user/repository"
)

const userColumns = `id, username, email, password_hash, created_at, last_login`

type userRow struct {
	ID           string       `db:"id"`
	Username     string       `db:"username"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	CreatedAt    time.Time    `db:"created_at"`
	LastLogin    sql.NullTime `db:"last_login"`
}

func (row userRow) toDomain() user.User {
	u := user.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
	if row.LastLogin.Valid {
		t := row.LastLogin.Time
		u.LastLogin = &t
	}
	return u
}

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	row := userRow{
		ID:           uuid.NewString(),
		Username:     opt.Username,
		Email:        strings.ToLower(opt.Email),
		PasswordHash: opt.PasswordHash,
		CreatedAt:    r.now().UTC(),
	}

	const query = `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES (:id, :username, :email, :password_hash, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return row.toDomain(), nil
}

// GetOneUser returns the zero User when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Username != "" {
		conditions = append(conditions, "username = ?")
		args = append(args, opt.Username)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, strings.ToLower(opt.Email))
	}
	if opt.Login != "" {
		conditions = append(conditions, "(username = ? OR email = ?)")
		args = append(args, opt.Login, strings.ToLower(opt.Login))
	}
	if len(conditions) == 0 {
		return user.User{}, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + strings.Join(conditions, " AND ") + ` LIMIT 1`

	var row userRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return row.toDomain(), nil
}

func (r *implRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+userColumns+` FROM users ORDER BY created_at`); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}

	users := make([]user.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

func (r *implRepository) UpdateLastLogin(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, r.now().UTC(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateLastLogin"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
