package sqlite

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"student-productivity/internal/course/repository"
	"student-productivity/pkg/log"
)

// Schema creates the course tables. It references users(id), so the user
// schema must be applied first.
const Schema = `
CREATE TABLE IF NOT EXISTS courses (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	code       TEXT NOT NULL DEFAULT '',
	instructor TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS courses_user_code ON courses (user_id, code COLLATE NOCASE) WHERE code <> '';
CREATE INDEX IF NOT EXISTS courses_user ON courses (user_id);

CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT PRIMARY KEY,
	course_id  TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	due_date   TEXT NOT NULL DEFAULT '',
	completed  INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS tasks_course ON tasks (course_id);

CREATE TABLE IF NOT EXISTS deadlines (
	id         TEXT PRIMARY KEY,
	course_id  TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	kind       TEXT NOT NULL,
	due_date   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS deadlines_course ON deadlines (course_id);`

type implRepository struct {
	db  *sqlx.DB
	l   log.Logger
	now func() time.Time
}

// New creates a sqlite-backed Repository for the course domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("course/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("course/repository/sqlite.%s", method)
}
