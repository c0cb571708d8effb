package deadline

// Dated is any record carrying a human-entered due date.
type Dated interface {
	GetDueDate() string
}

// DueDate is a bare due-date string usable wherever a Dated is expected.
type DueDate string

// GetDueDate implements Dated.
func (d DueDate) GetDueDate() string { return string(d) }

// Status classifies a set of deadlines relative to today.
// Next and Closest point into the slice passed to GetStatus.
type Status[T Dated] struct {
	Next        *T
	Closest     *T
	IsFinished  bool
	HasUpcoming bool
}

// Display is the formatted view of a single deadline with its urgency flags
// computed before formatting.
type Display struct {
	Text      string
	DaysUntil int
	Overdue   bool
	Urgent    bool
	Valid     bool
}

// Color is the UI color class attached to a course status.
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

// CourseStatus is the derived progress/urgency label for a course.
type CourseStatus struct {
	Status  string
	Message string
	Color   Color
}
