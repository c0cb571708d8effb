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

const deadlineColumns = `id, course_id, title, kind, due_date, created_at`

type deadlineRow struct {
	ID        string    `db:"id"`
	CourseID  string    `db:"course_id"`
	Title     string    `db:"title"`
	Kind      string    `db:"kind"`
	DueDate   string    `db:"due_date"`
	CreatedAt time.Time `db:"created_at"`
}

func (row deadlineRow) toDomain() course.Deadline {
	return course.Deadline{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Title:     row.Title,
		Kind:      row.Kind,
		DueDate:   row.DueDate,
		CreatedAt: row.CreatedAt,
	}
}

func (r *implRepository) CreateDeadline(ctx context.Context, opt repo.CreateDeadlineOptions) (course.Deadline, error) {
	row := deadlineRow{
		ID:        uuid.NewString(),
		CourseID:  opt.CourseID,
		Title:     opt.Title,
		Kind:      opt.Kind,
		DueDate:   opt.DueDate,
		CreatedAt: r.now().UTC(),
	}

	const query = `
		INSERT INTO deadlines (id, course_id, title, kind, due_date, created_at)
		VALUES (:id, :course_id, :title, :kind, :due_date, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDeadline"), err)
		return course.Deadline{}, repo.ErrFailedToInsert
	}
	return row.toDomain(), nil
}

func (r *implRepository) GetOneDeadline(ctx context.Context, opt repo.GetOneDeadlineOptions) (course.Deadline, error) {
	if opt.ID == "" {
		return course.Deadline{}, nil
	}
	conditions := []string{"id = ?"}
	args := []any{opt.ID}
	if opt.CourseID != "" {
		conditions = append(conditions, "course_id = ?")
		args = append(args, opt.CourseID)
	}

	var row deadlineRow
	err := r.db.GetContext(ctx, &row, `SELECT `+deadlineColumns+` FROM deadlines WHERE `+where(conditions), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return course.Deadline{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDeadline"), err)
		return course.Deadline{}, repo.ErrFailedToGet
	}
	return row.toDomain(), nil
}

func (r *implRepository) ListDeadlines(ctx context.Context, opt repo.ListDeadlinesOptions) ([]course.Deadline, error) {
	if len(opt.CourseIDs) == 0 {
		return nil, nil
	}

	query, args, err := r.inCourses(`SELECT `+deadlineColumns+` FROM deadlines`, opt.CourseIDs)
	if err != nil {
		r.l.Errorf(ctx, "%s: build query: %v", r.dsn("ListDeadlines"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []deadlineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDeadlines"), err)
		return nil, repo.ErrFailedToList
	}

	deadlines := make([]course.Deadline, len(rows))
	for i, row := range rows {
		deadlines[i] = row.toDomain()
	}
	return deadlines, nil
}

func (r *implRepository) DeleteDeadline(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM deadlines WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDeadline"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
