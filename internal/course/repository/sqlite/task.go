package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"student-productivity/internal/course"
	repo "student-productivity/internal/course/repository"
)

const taskColumns = `id, course_id, title, due_date, completed, created_at, updated_at`

type taskRow struct {
	ID        string    `db:"id"`
	CourseID  string    `db:"course_id"`
	Title     string    `db:"title"`
	DueDate   string    `db:"due_date"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row taskRow) toDomain() course.Task {
	return course.Task{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Title:     row.Title,
		DueDate:   row.DueDate,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]course.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
		INSERT INTO tasks (id, course_id, title, due_date, completed, created_at, updated_at)
		VALUES (:id, :course_id, :title, :due_date, :completed, :created_at, :updated_at)`

	now := r.now().UTC()
	tasks := make([]course.Task, 0, len(opts))
	for _, opt := range opts {
		row := taskRow{
			ID:        uuid.NewString(),
			CourseID:  opt.CourseID,
			Title:     opt.Title,
			DueDate:   opt.DueDate,
			Completed: opt.Completed,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
			return nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, row.toDomain())
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (course.Task, error) {
	if opt.ID == "" {
		return course.Task{}, nil
	}
	conditions := []string{"id = ?"}
	args := []any{opt.ID}
	if opt.CourseID != "" {
		conditions = append(conditions, "course_id = ?")
		args = append(args, opt.CourseID)
	}

	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM tasks WHERE `+where(conditions), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return course.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return course.Task{}, repo.ErrFailedToGet
	}
	return row.toDomain(), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]course.Task, error) {
	if len(opt.CourseIDs) == 0 {
		return nil, nil
	}

	var extra []string
	if opt.IncompleteOnly {
		extra = append(extra, "completed = 0")
	}
	query, args, err := r.inCourses(`SELECT `+taskColumns+` FROM tasks`, opt.CourseIDs, extra...)
	if err != nil {
		r.l.Errorf(ctx, "%s: build query: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]course.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (course.Task, error) {
	const query = `
		UPDATE tasks SET title = ?, due_date = ?, completed = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, opt.Title, opt.DueDate, opt.Completed, r.now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return course.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return course.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
