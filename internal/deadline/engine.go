package deadline

import (
	"sort"
	"time"

	"student-productivity/pkg/datemath"
)

// Engine evaluates deadlines against the parser's clock and timezone.
// It holds no mutable state and may be shared across goroutines.
type Engine struct {
	parser *datemath.Parser
}

// New creates an Engine backed by parser.
func New(parser *datemath.Parser) *Engine {
	return &Engine{parser: parser}
}

// Parser returns the underlying date parser.
func (e *Engine) Parser() *datemath.Parser {
	return e.parser
}

type parsedDeadline[T Dated] struct {
	original *T
	date     time.Time
}

// GetStatus finds the next upcoming and closest deadline in deadlines.
// Unparsable due dates are skipped. Equal dates keep their input order.
func GetStatus[T Dated](e *Engine, deadlines []T) Status[T] {
	var st Status[T]
	if len(deadlines) == 0 {
		return st
	}

	parsed := make([]parsedDeadline[T], 0, len(deadlines))
	for i := range deadlines {
		t, err := e.parser.ParseFlexible(deadlines[i].GetDueDate())
		if err != nil {
			continue
		}
		parsed = append(parsed, parsedDeadline[T]{original: &deadlines[i], date: t})
	}
	if len(parsed) == 0 {
		return st
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].date.Before(parsed[j].date)
	})

	today := e.parser.Today()
	for _, p := range parsed {
		if !e.parser.StartOfDay(p.date).Before(today) {
			st.Next = p.original
			break
		}
	}

	if st.Next != nil {
		st.Closest = st.Next
		st.HasUpcoming = true
	} else {
		st.Closest = parsed[len(parsed)-1].original
		st.IsFinished = true
	}
	return st
}
