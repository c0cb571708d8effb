package usecase

import (
	"context"
	"strings"

	"student-productivity/internal/course"
	repo "student-productivity/internal/course/repository"
	"student-productivity/internal/deadline"
	"student-productivity/internal/model"
)

func (uc *implUseCase) CreateCourse(ctx context.Context, sc model.Scope, input course.CreateCourseInput) (course.Course, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.TrimSpace(input.Code)
	input.Instructor = strings.TrimSpace(input.Instructor)

	if err := uc.checkCode(ctx, sc, input.Code, ""); err != nil {
		return course.Course{}, err
	}

	c, err := uc.repo.CreateCourse(ctx, repo.CreateCourseOptions{
		UserID:     sc.UserID,
		Name:       input.Name,
		Code:       input.Code,
		Instructor: input.Instructor,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCourse CreateCourse: %v", err)
		return course.Course{}, err
	}
	return c, nil
}

func (uc *implUseCase) ListCourses(ctx context.Context, sc model.Scope) (course.ListCoursesOutput, error) {
	courses, err := uc.repo.ListCourses(ctx, repo.ListCoursesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCourses ListCourses: %v", err)
		return course.ListCoursesOutput{}, err
	}
	return course.ListCoursesOutput{Courses: courses}, nil
}

// Overview loads a course with its tasks and deadlines and derives progress,
// the next deadline and the course status from them.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, id string) (course.Overview, error) {
	c, err := uc.getCourse(ctx, sc, id)
	if err != nil {
		return course.Overview{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{CourseIDs: []string{c.ID}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview ListTasks: %v", err)
		return course.Overview{}, err
	}
	deadlines, err := uc.repo.ListDeadlines(ctx, repo.ListDeadlinesOptions{CourseIDs: []string{c.ID}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview ListDeadlines: %v", err)
		return course.Overview{}, err
	}

	out := course.Overview{
		Course:    c,
		Tasks:     make([]course.TaskView, len(tasks)),
		Deadlines: make([]course.DeadlineView, len(deadlines)),
	}
	for i, t := range tasks {
		out.Tasks[i] = course.TaskView{Task: t, Display: uc.engine.Describe(t)}
	}
	for i, d := range deadlines {
		out.Deadlines[i] = course.DeadlineView{Deadline: d, Display: uc.engine.Describe(d)}
	}

	out.CompletedTasks, out.Progress = progress(tasks)
	out.DeadlineStatus = deadline.GetStatus(uc.engine, deadlines)
	out.NextDisplay = deadline.DescribeNext(uc.engine, out.DeadlineStatus.Next)
	out.CourseStatus = deadline.GetCourseStatus(uc.engine, out.Progress, deadlines, len(tasks))
	return out, nil
}

func (uc *implUseCase) UpdateCourse(ctx context.Context, sc model.Scope, input course.UpdateCourseInput) (course.Course, error) {
	if _, err := uc.getCourse(ctx, sc, input.ID); err != nil {
		return course.Course{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.TrimSpace(input.Code)
	input.Instructor = strings.TrimSpace(input.Instructor)
	if err := uc.checkCode(ctx, sc, input.Code, input.ID); err != nil {
		return course.Course{}, err
	}

	c, err := uc.repo.UpdateCourse(ctx, repo.UpdateCourseOptions{
		ID:         input.ID,
		Name:       input.Name,
		Code:       input.Code,
		Instructor: input.Instructor,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCourse UpdateCourse: %v", err)
		return course.Course{}, err
	}
	if c.ID == "" {
		return course.Course{}, course.ErrCourseNotFound
	}
	return c, nil
}

func (uc *implUseCase) DeleteCourse(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getCourse(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteCourse(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCourse DeleteCourse: %v", err)
		return err
	}
	return nil
}
