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

const courseColumns = `id, user_id, name, code, instructor, created_at, updated_at`

type courseRow struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Name       string    `db:"name"`
	Code       string    `db:"code"`
	Instructor string    `db:"instructor"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row courseRow) toDomain() course.Course {
	return course.Course{
		ID:         row.ID,
		UserID:     row.UserID,
		Name:       row.Name,
		Code:       row.Code,
		Instructor: row.Instructor,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func (r *implRepository) CreateCourse(ctx context.Context, opt repo.CreateCourseOptions) (course.Course, error) {
	now := r.now().UTC()
	row := courseRow{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		Name:       opt.Name,
		Code:       opt.Code,
		Instructor: opt.Instructor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	const query = `
		INSERT INTO courses (id, user_id, name, code, instructor, created_at, updated_at)
		VALUES (:id, :user_id, :name, :code, :instructor, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCourse"), err)
		return course.Course{}, repo.ErrFailedToInsert
	}
	return row.toDomain(), nil
}

func (r *implRepository) GetOneCourse(ctx context.Context, opt repo.GetOneCourseOptions) (course.Course, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Code != "" {
		conditions = append(conditions, "code = ? COLLATE NOCASE")
		args = append(args, opt.Code)
	}
	if len(conditions) == 0 {
		return course.Course{}, nil
	}

	var row courseRow
	err := r.db.GetContext(ctx, &row, `SELECT `+courseColumns+` FROM courses WHERE `+where(conditions)+` LIMIT 1`, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return course.Course{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCourse"), err)
		return course.Course{}, repo.ErrFailedToGet
	}
	return row.toDomain(), nil
}

func (r *implRepository) ListCourses(ctx context.Context, opt repo.ListCoursesOptions) ([]course.Course, error) {
	var rows []courseRow
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = ? ORDER BY name COLLATE NOCASE, created_at`
	if err := r.db.SelectContext(ctx, &rows, query, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCourses"), err)
		return nil, repo.ErrFailedToList
	}

	courses := make([]course.Course, len(rows))
	for i, row := range rows {
		courses[i] = row.toDomain()
	}
	return courses, nil
}

func (r *implRepository) UpdateCourse(ctx context.Context, opt repo.UpdateCourseOptions) (course.Course, error) {
	const query = `
		UPDATE courses SET name = ?, code = ?, instructor = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, opt.Name, opt.Code, opt.Instructor, r.now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCourse"), err)
		return course.Course{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return course.Course{}, nil
	}
	return r.GetOneCourse(ctx, repo.GetOneCourseOptions{ID: opt.ID})
}

func (r *implRepository) DeleteCourse(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCourse"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
