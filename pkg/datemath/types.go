package datemath

import (
	"errors"
	"time"
)

var (
	// ErrUnparsableDate is returned when a due-date string cannot be resolved to a calendar day.
	ErrUnparsableDate = errors.New("unparsable date")
	// ErrUnrecognizedPhrase is returned by Parse for input that is not a known relative phrase.
	ErrUnrecognizedPhrase = errors.New("unrecognized relative date phrase")
)

// DateLayout is the canonical storage format for normalized due dates.
const DateLayout = "2006-01-02"

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the clock used to resolve "today" and the current year.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}
