package usecase

import (
	"context"
	"strings"

	"student-productivity/internal/course"
	repo "student-productivity/internal/course/repository"
	"student-productivity/internal/model"
)

func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input course.CreateTaskInput) (course.Task, error) {
	if _, err := uc.getCourse(ctx, sc, input.CourseID); err != nil {
		return course.Task{}, err
	}

	tasks, err := uc.repo.CreateTasks(ctx, []repo.CreateTaskOptions{{
		CourseID: input.CourseID,
		Title:    strings.TrimSpace(input.Title),
		DueDate:  uc.normalizeDueDate(input.DueDate),
	}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask CreateTasks: %v", err)
		return course.Task{}, err
	}
	return tasks[0], nil
}

// UpdateTask applies the non-nil fields of input.
func (uc *implUseCase) UpdateTask(ctx context.Context, sc model.Scope, input course.UpdateTaskInput) (course.Task, error) {
	t, err := uc.getTask(ctx, sc, input.CourseID, input.TaskID)
	if err != nil {
		return course.Task{}, err
	}

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.DueDate != nil {
		t.DueDate = uc.normalizeDueDate(*input.DueDate)
	}
	if input.Completed != nil {
		t.Completed = *input.Completed
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:        t.ID,
		Title:     t.Title,
		DueDate:   t.DueDate,
		Completed: t.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask UpdateTask: %v", err)
		return course.Task{}, err
	}
	if updated.ID == "" {
		return course.Task{}, course.ErrTaskNotFound
	}
	return updated, nil
}

func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, courseID, taskID string) error {
	if _, err := uc.getTask(ctx, sc, courseID, taskID); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, taskID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask DeleteTask: %v", err)
		return err
	}
	return nil
}

// ImportTasks creates one task per markdown checkbox. Checked boxes become
// completed tasks and "(due: ...)" suffixes become due dates.
func (uc *implUseCase) ImportTasks(ctx context.Context, sc model.Scope, input course.ImportTasksInput) (course.ImportTasksOutput, error) {
	if _, err := uc.getCourse(ctx, sc, input.CourseID); err != nil {
		return course.ImportTasksOutput{}, err
	}

	items := uc.checklist.Parse(input.Markdown)
	if len(items) == 0 {
		return course.ImportTasksOutput{}, course.ErrEmptyChecklist
	}

	opts := make([]repo.CreateTaskOptions, len(items))
	for i, item := range items {
		opts[i] = repo.CreateTaskOptions{
			CourseID:  input.CourseID,
			Title:     item.Title,
			DueDate:   uc.normalizeDueDate(item.DueDate),
			Completed: item.Checked,
		}
	}

	tasks, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportTasks CreateTasks: %v", err)
		return course.ImportTasksOutput{}, err
	}
	uc.l.Infof(ctx, "uc.ImportTasks: imported %d tasks into course %s", len(tasks), input.CourseID)
	return course.ImportTasksOutput{Tasks: tasks, Parsed: len(items)}, nil
}

func (uc *implUseCase) getTask(ctx context.Context, sc model.Scope, courseID, taskID string) (course.Task, error) {
	if _, err := uc.getCourse(ctx, sc, courseID); err != nil {
		return course.Task{}, err
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID, CourseID: courseID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetOneTask: %v", err)
		return course.Task{}, err
	}
	if t.ID == "" {
		return course.Task{}, course.ErrTaskNotFound
	}
	return t, nil
}
