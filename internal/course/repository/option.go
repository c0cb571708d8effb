package repository

type CreateCourseOptions struct {
	UserID     string
	Name       string
	Code       string
	Instructor string
}

// GetOneCourseOptions filters a single course; non-empty fields are ANDed.
type GetOneCourseOptions struct {
	ID     string
	UserID string
	Code   string
}

type ListCoursesOptions struct {
	UserID string
}

type UpdateCourseOptions struct {
	ID         string
	Name       string
	Code       string
	Instructor string
}

type CreateTaskOptions struct {
	CourseID  string
	Title     string
	DueDate   string
	Completed bool
}

type GetOneTaskOptions struct {
	ID       string
	CourseID string
}

// ListTasksOptions lists tasks of the given courses in creation order.
type ListTasksOptions struct {
	CourseIDs      []string
	IncompleteOnly bool
}

type UpdateTaskOptions struct {
	ID        string
	Title     string
	DueDate   string
	Completed bool
}

type CreateDeadlineOptions struct {
	CourseID string
	Title    string
	Kind     string
	DueDate  string
}

type GetOneDeadlineOptions struct {
	ID       string
	CourseID string
}

// ListDeadlinesOptions lists deadlines of the given courses in creation order.
type ListDeadlinesOptions struct {
	CourseIDs []string
}
