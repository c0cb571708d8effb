package deadline

import (
	"fmt"
	"sort"
)

// bufferDays separates a relaxed schedule from a merely comfortable one.
const bufferDays = 30

type courseFacts struct {
	progress   float64
	days       *int
	tasksCount int
}

func (f courseFacts) overdue() bool { return f.days != nil && *f.days < 0 }
func (f courseFacts) urgent() bool  { return f.days != nil && *f.days >= 0 && *f.days <= 7 }
func (f courseFacts) roomy() bool   { return f.days != nil && *f.days > bufferDays }

type courseRule struct {
	match  func(f courseFacts) bool
	status func(f courseFacts) CourseStatus
}

func fixed(status, message string, color Color) func(courseFacts) CourseStatus {
	return func(courseFacts) CourseStatus {
		return CourseStatus{Status: status, Message: message, Color: color}
	}
}

func noDeadline(f courseFacts) bool { return f.days == nil }

// courseRules is evaluated top to bottom; the first match wins.
var courseRules = []courseRule{
	{
		match:  func(f courseFacts) bool { return f.progress == 100 },
		status: fixed("Completed", "All tasks completed!", ColorGreen),
	},

	{
		match: func(f courseFacts) bool { return noDeadline(f) && f.progress == 0 },
		status: func(f courseFacts) CourseStatus {
			return CourseStatus{Status: "Not Started", Message: waitingMessage(f.tasksCount), Color: ColorGray}
		},
	},
	{
		match:  func(f courseFacts) bool { return noDeadline(f) && f.progress < 30 },
		status: fixed("Getting Started", "Making initial progress", ColorBlue),
	},
	{
		match:  func(f courseFacts) bool { return noDeadline(f) && f.progress < 70 },
		status: fixed("In Progress", "Steady progress being made", ColorBlue),
	},
	{
		match:  noDeadline,
		status: fixed("Almost Done", "Nearly finished with all tasks", ColorGreen),
	},

	{
		match:  func(f courseFacts) bool { return f.overdue() && f.progress < 50 },
		status: fixed("Behind Schedule", "Deadline passed with significant work remaining", ColorRed),
	},
	{
		match:  func(f courseFacts) bool { return f.overdue() && f.progress < 90 },
		status: fixed("Overdue", "Deadline passed, finish the remaining tasks", ColorRed),
	},
	{
		match:  courseFacts.overdue,
		status: fixed("Wrapping Up", "Deadline passed with only a few tasks left", ColorYellow),
	},

	{
		match: func(f courseFacts) bool { return f.urgent() && f.progress < 30 },
		status: func(f courseFacts) CourseStatus {
			return CourseStatus{Status: "Urgent", Message: "Deadline " + dayPhrase(*f.days) + " and most work remains", Color: ColorRed}
		},
	},
	{
		match: func(f courseFacts) bool { return f.urgent() && f.progress < 70 },
		status: func(f courseFacts) CourseStatus {
			return CourseStatus{Status: "Needs Attention", Message: "Deadline " + dayPhrase(*f.days) + ", keep pushing", Color: ColorYellow}
		},
	},
	{
		match: courseFacts.urgent,
		status: func(f courseFacts) CourseStatus {
			return CourseStatus{Status: "On Track", Message: "Deadline " + dayPhrase(*f.days) + ", nearly there", Color: ColorYellow}
		},
	},

	{
		match: func(f courseFacts) bool { return f.progress == 0 },
		status: func(f courseFacts) CourseStatus {
			return CourseStatus{Status: "Just Starting", Message: fmt.Sprintf("%d days until the next deadline", *f.days), Color: ColorGray}
		},
	},
	{
		match:  func(f courseFacts) bool { return f.progress < 30 && f.roomy() },
		status: fixed("Plenty of Time", "Over a month until the next deadline", ColorBlue),
	},
	{
		match: func(f courseFacts) bool { return f.progress < 30 },
		status: func(f courseFacts) CourseStatus {
			return CourseStatus{Status: "Pick Up the Pace", Message: fmt.Sprintf("%d days left with most work remaining", *f.days), Color: ColorBlue}
		},
	},
	{
		match: func(f courseFacts) bool { return f.progress < 60 },
		status: func(f courseFacts) CourseStatus {
			return CourseStatus{Status: "In Progress", Message: fmt.Sprintf("Good progress with %d days to go", *f.days), Color: ColorBlue}
		},
	},
	{
		match:  func(f courseFacts) bool { return f.progress < 90 && f.roomy() },
		status: fixed("Ahead of Schedule", "Well ahead of the next deadline", ColorGreen),
	},
	{
		match:  func(f courseFacts) bool { return f.progress < 90 },
		status: fixed("On Track", "Steady pace toward the next deadline", ColorGreen),
	},
	{
		match:  func(courseFacts) bool { return true },
		status: fixed("Almost Done", "Nearly finished with time to spare", ColorGreen),
	},
}

// GetCourseStatus labels a course from its task completion percentage
// (0-100) and the days until its nearest deadline.
func GetCourseStatus[T Dated](e *Engine, progress float64, deadlines []T, tasksCount int) CourseStatus {
	f := courseFacts{
		progress:   clampProgress(progress),
		days:       nearestDeadlineDays(e, deadlines),
		tasksCount: tasksCount,
	}
	for _, r := range courseRules {
		if r.match(f) {
			return r.status(f)
		}
	}
	return CourseStatus{}
}

// nearestDeadlineDays uses plain parsing only: the first non-negative day
// count in ascending order, else the most recent past one.
func nearestDeadlineDays[T Dated](e *Engine, deadlines []T) *int {
	today := e.parser.Today()

	days := make([]int, 0, len(deadlines))
	for _, d := range deadlines {
		t, err := e.parser.ParsePlain(d.GetDueDate())
		if err != nil {
			continue
		}
		days = append(days, e.parser.DaysBetween(today, t))
	}
	if len(days) == 0 {
		return nil
	}

	sort.Ints(days)
	for _, d := range days {
		if d >= 0 {
			return &d
		}
	}
	last := days[len(days)-1]
	return &last
}

func clampProgress(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func dayPhrase(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}

func waitingMessage(tasks int) string {
	switch tasks {
	case 0:
		return "No tasks added yet"
	case 1:
		return "1 task waiting to be started"
	}
	return fmt.Sprintf("%d tasks waiting to be started", tasks)
}
