package course

import (
	"context"

	"student-productivity/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Course CRUD
	CreateCourse(ctx context.Context, sc model.Scope, input CreateCourseInput) (Course, error)
	ListCourses(ctx context.Context, sc model.Scope) (ListCoursesOutput, error)
	Overview(ctx context.Context, sc model.Scope, id string) (Overview, error)
	UpdateCourse(ctx context.Context, sc model.Scope, input UpdateCourseInput) (Course, error)
	DeleteCourse(ctx context.Context, sc model.Scope, id string) error

	// Tasks
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (Task, error)
	UpdateTask(ctx context.Context, sc model.Scope, input UpdateTaskInput) (Task, error)
	DeleteTask(ctx context.Context, sc model.Scope, courseID, taskID string) error
	ImportTasks(ctx context.Context, sc model.Scope, input ImportTasksInput) (ImportTasksOutput, error)

	// Deadlines
	CreateDeadline(ctx context.Context, sc model.Scope, input CreateDeadlineInput) (Deadline, error)
	DeleteDeadline(ctx context.Context, sc model.Scope, courseID, deadlineID string) error
	SyncCalendar(ctx context.Context, sc model.Scope, input SyncCalendarInput) (SyncCalendarOutput, error)

	Dashboard(ctx context.Context, sc model.Scope) (DashboardOutput, error)
}
