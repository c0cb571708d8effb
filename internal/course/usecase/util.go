package usecase

import (
	"context"
	"strings"

	"student-productivity/internal/course"
	repo "student-productivity/internal/course/repository"
	"student-productivity/internal/model"
)

// getCourse loads a course owned by the caller.
func (uc *implUseCase) getCourse(ctx context.Context, sc model.Scope, id string) (course.Course, error) {
	c, err := uc.repo.GetOneCourse(ctx, repo.GetOneCourseOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getCourse GetOneCourse: %v", err)
		return course.Course{}, err
	}
	if c.ID == "" {
		return course.Course{}, course.ErrCourseNotFound
	}
	return c, nil
}

// checkCode fails when another course of the caller already uses code.
func (uc *implUseCase) checkCode(ctx context.Context, sc model.Scope, code, selfID string) error {
	if code == "" {
		return nil
	}
	existing, err := uc.repo.GetOneCourse(ctx, repo.GetOneCourseOptions{UserID: sc.UserID, Code: code})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkCode GetOneCourse: %v", err)
		return err
	}
	if existing.ID != "" && existing.ID != selfID {
		return course.ErrDuplicateCode
	}
	return nil
}

func (uc *implUseCase) normalizeDueDate(text string) string {
	return uc.engine.Parser().NormalizeDueDate(text)
}

// progress is the completed share of tasks as a percentage.
func progress(tasks []course.Task) (completed int, pct float64) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	if len(tasks) == 0 {
		return 0, 0
	}
	return completed, float64(completed) * 100 / float64(len(tasks))
}

func normalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return course.KindOther
	}
	return kind
}

// label is the short course name used in calendar events and digests.
func label(c course.Course) string {
	if c.Code != "" {
		return c.Code
	}
	return c.Name
}
