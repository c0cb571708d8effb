package deadline

import (
	"fmt"
	"strings"
)

const (
	textNoDeadlines = "No deadlines"
	textNoDate      = "No date"
)

// Describe formats d relative to today and reports its urgency flags.
// A nil d yields "No deadlines". An unparsable due date is not Valid and
// its Text is the raw due date.
func (e *Engine) Describe(d Dated) Display {
	if d == nil {
		return Display{Text: textNoDeadlines}
	}

	raw := strings.TrimSpace(d.GetDueDate())
	due, err := e.parser.ParseFlexible(raw)
	if err != nil {
		if raw == "" {
			raw = textNoDate
		}
		return Display{Text: raw}
	}

	today := e.parser.Today()
	days := e.parser.DaysBetween(today, due)

	out := Display{
		DaysUntil: days,
		Overdue:   days < 0,
		Urgent:    days == 0 || days == 1,
		Valid:     true,
	}

	switch {
	case days < 0:
		n := -days
		if n == 1 {
			out.Text = "1 day overdue"
		} else {
			out.Text = fmt.Sprintf("%d days overdue", n)
		}
	case days == 0:
		out.Text = "Due today"
	case days == 1:
		out.Text = "Due tomorrow"
	case days <= 7:
		out.Text = fmt.Sprintf("Due in %d days", days)
	default:
		local := due.In(e.parser.Location())
		if local.Year() != today.Year() {
			out.Text = local.Format("Jan 2, 2006")
		} else {
			out.Text = local.Format("Jan 2")
		}
	}
	return out
}

// FormatDisplay returns the display text for d.
func (e *Engine) FormatDisplay(d Dated) string {
	return e.Describe(d).Text
}

// IsDeadlineOverdue reports whether a FormatDisplay string marks an overdue deadline.
func IsDeadlineOverdue(text string) bool {
	return strings.Contains(text, "overdue")
}

// IsDeadlineUrgent reports whether a FormatDisplay string marks a deadline due today or tomorrow.
func IsDeadlineUrgent(text string) bool {
	return strings.Contains(text, "today") || strings.Contains(text, "tomorrow")
}

// DescribeNext describes the deadline d points to, typically Status.Next
// or Status.Closest. A nil d yields "No deadlines".
func DescribeNext[T Dated](e *Engine, d *T) Display {
	if d == nil {
		return e.Describe(nil)
	}
	return e.Describe(*d)
}
