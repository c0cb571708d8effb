package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// academicPattern matches "Mon. Nov. 24 @ 9:00am" style dates: an optional
// leading word (weekday), a month token with optional period, a day number.
var academicPattern = regexp.MustCompile(`(?i)(?:\b[a-z]{2,9}\.?,?\s+)?\b([a-z]{3,9})\.?\s+(\d{1,2})\b`)

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ParseFlexible resolves loosely formatted due dates. ISO 8601 and common
// English layouts are tried first; academic "Weekday. Month. Day" phrasing
// falls back to the current year at midnight. Returns ErrUnparsableDate
// when neither applies.
func (p *Parser) ParseFlexible(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, ErrUnparsableDate
	}

	if t, err := p.ParsePlain(text); err == nil {
		return t, nil
	}

	return p.parseAcademic(text)
}

// ParsePlain is the general-purpose parse alone, without the academic fallback.
func (p *Parser) ParsePlain(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, ErrUnparsableDate
	}

	t, err := dateparse.ParseIn(text, p.location)
	if err != nil || t.Year() == 0 {
		return time.Time{}, ErrUnparsableDate
	}
	return t, nil
}

func (p *Parser) parseAcademic(text string) (time.Time, error) {
	year := p.Now().Year()

	for _, m := range academicPattern.FindAllStringSubmatch(text, -1) {
		month, ok := months[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		day, err := strconv.Atoi(m[2])
		if err != nil || day < 1 || day > daysIn(month, year) {
			continue
		}
		return time.Date(year, month, day, 0, 0, 0, 0, p.location), nil
	}

	return time.Time{}, ErrUnparsableDate
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
