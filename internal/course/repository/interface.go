package repository

import (
	"context"

	"student-productivity/internal/course"
)

// Repository is the composed data store for the course domain.
// GetOne methods return the zero value (ID == "") when nothing matches.
type Repository interface {
	CourseRepository
	TaskRepository
	DeadlineRepository
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, opt CreateCourseOptions) (course.Course, error)
	GetOneCourse(ctx context.Context, opt GetOneCourseOptions) (course.Course, error)
	ListCourses(ctx context.Context, opt ListCoursesOptions) ([]course.Course, error)
	UpdateCourse(ctx context.Context, opt UpdateCourseOptions) (course.Course, error)
	// DeleteCourse also removes the course's tasks and deadlines.
	DeleteCourse(ctx context.Context, id string) error
}

type TaskRepository interface {
	// CreateTasks inserts all tasks in one transaction.
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]course.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (course.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]course.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (course.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type DeadlineRepository interface {
	CreateDeadline(ctx context.Context, opt CreateDeadlineOptions) (course.Deadline, error)
	GetOneDeadline(ctx context.Context, opt GetOneDeadlineOptions) (course.Deadline, error)
	ListDeadlines(ctx context.Context, opt ListDeadlinesOptions) ([]course.Deadline, error)
	DeleteDeadline(ctx context.Context, id string) error
}
