package course

import "errors"

var (
	ErrCourseNotFound        = errors.New("course not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrDeadlineNotFound      = errors.New("deadline not found")
	ErrDuplicateCode         = errors.New("course code already exists")
	ErrEmptyChecklist        = errors.New("no checklist items found")
	ErrCalendarNotConfigured = errors.New("calendar sync is not configured")
)
