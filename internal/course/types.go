package course

import (
	"time"

	"student-productivity/internal/deadline"
)

// Deadline kinds.
const (
	KindAssignment = "assignment"
	KindExam       = "exam"
	KindQuiz       = "quiz"
	KindProject    = "project"
	KindOther      = "other"
)

// Course belongs to one user.
type Course struct {
	ID         string
	UserID     string
	Name       string
	Code       string
	Instructor string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Task is a unit of coursework. DueDate keeps the text the student typed.
type Task struct {
	ID        string
	CourseID  string
	Title     string
	DueDate   string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Task) GetDueDate() string { return t.DueDate }

// Deadline is a dated course event such as an exam.
type Deadline struct {
	ID        string
	CourseID  string
	Title     string
	Kind      string
	DueDate   string
	CreatedAt time.Time
}

func (d Deadline) GetDueDate() string { return d.DueDate }

// --- UseCase Inputs ---

type CreateCourseInput struct {
	Name       string
	Code       string
	Instructor string
}

type UpdateCourseInput struct {
	ID         string
	Name       string
	Code       string
	Instructor string
}

type CreateTaskInput struct {
	CourseID string
	Title    string
	DueDate  string
}

// UpdateTaskInput is a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	CourseID  string
	TaskID    string
	Title     *string
	DueDate   *string
	Completed *bool
}

type ImportTasksInput struct {
	CourseID string
	Markdown string
}

type CreateDeadlineInput struct {
	CourseID string
	Title    string
	Kind     string
	DueDate  string
}

type SyncCalendarInput struct {
	CourseID   string
	CalendarID string
}

// --- UseCase Outputs ---

// TaskView pairs a task with its formatted due date.
type TaskView struct {
	Task    Task
	Display deadline.Display
}

// DeadlineView pairs a deadline with its formatted due date.
type DeadlineView struct {
	Deadline Deadline
	Display  deadline.Display
}

// Overview is a course with everything derived from its records.
type Overview struct {
	Course         Course
	Tasks          []TaskView
	Deadlines      []DeadlineView
	CompletedTasks int
	Progress       float64
	DeadlineStatus deadline.Status[Deadline]
	NextDisplay    deadline.Display
	CourseStatus   deadline.CourseStatus
}

type ListCoursesOutput struct {
	Courses []Course
}

type ImportTasksOutput struct {
	Tasks []Task
	// Parsed is the number of checkboxes found in the markdown.
	Parsed int
}

type SyncCalendarOutput struct {
	Created []CalendarEvent
	// Skipped counts deadlines already on the calendar, in the past, or undated.
	Skipped int
}

type CalendarEvent struct {
	DeadlineID string
	EventID    string
	Link       string
	Date       string
}

// DashboardItem summarizes one course.
type DashboardItem struct {
	Course       Course
	Progress     float64
	TasksCount   int
	Next         *Deadline
	NextDisplay  deadline.Display
	CourseStatus deadline.CourseStatus
}

type DashboardOutput struct {
	Items []DashboardItem
	// Urgent counts items due today or tomorrow across all courses.
	Urgent int
	// Overdue counts overdue deadlines and incomplete tasks.
	Overdue int
}
