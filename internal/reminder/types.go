package reminder

import (
	"student-productivity/internal/deadline"
	"student-productivity/internal/user"
)

// Item kinds besides the deadline kinds.
const KindTask = "task"

// Item is one task or deadline that needs attention.
type Item struct {
	Course  string
	Title   string
	Kind    string
	DueDate string
	Display deadline.Display
}

// Digest is the reminder for one user. Overdue and Urgent keep course order,
// then task-before-deadline order within a course.
type Digest struct {
	User    user.User
	Overdue []Item
	Urgent  []Item
}

// Empty reports whether the digest has nothing to send.
func (d Digest) Empty() bool {
	return len(d.Overdue) == 0 && len(d.Urgent) == 0
}

// RunOutput summarizes one pass over all users.
type RunOutput struct {
	Users  int
	Sent   int
	Empty  int
	Failed int
}
