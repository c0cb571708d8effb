package checklist

import (
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// "  - [x] Task name" → ["  ", "x", "Task name"]; "*" bullets are accepted too.
	CheckboxPattern = `(?m)^([ \t]*)[-*] \[([ xX])\] (.+)$`
	// "Read ch. 3 (due: Nov. 24)" → "Nov. 24"
	DuePattern = `(?i)\s*\(\s*due\s*:?\s*([^)]*)\)\s*$`
)

type Service interface {
	// Parse extracts checkboxes, splitting off "(due: ...)" annotations.
	Parse(content string) []Item

	// GetStats calculates checklist statistics.
	GetStats(items []Item) Stats

	// Render writes items back as a markdown checklist.
	Render(items []RenderItem) string
}

type service struct {
	pattern    *regexp.Regexp
	duePattern *regexp.Regexp
	fenced     *regexp.Regexp
	inline     *regexp.Regexp
}

func New() Service {
	return &service{
		pattern:    regexp.MustCompile(CheckboxPattern),
		duePattern: regexp.MustCompile(DuePattern),
		fenced:     regexp.MustCompile("(?s)```.*?```"),
		inline:     regexp.MustCompile("`[^`]+`"),
	}
}

// sanitize drops code blocks so examples inside them are not imported.
func (s *service) sanitize(content string) string {
	return s.inline.ReplaceAllString(s.fenced.ReplaceAllString(content, ""), "")
}

func (s *service) Parse(content string) []Item {
	matches := s.pattern.FindAllStringSubmatch(s.sanitize(content), -1)
	items := make([]Item, 0, len(matches))

	for _, match := range matches {
		if len(match) != 4 {
			continue
		}

		text := strings.TrimSpace(match[3])
		var due string
		if m := s.duePattern.FindStringSubmatchIndex(text); m != nil {
			due = strings.TrimSpace(text[m[2]:m[3]])
			text = strings.TrimSpace(text[:m[0]])
		}
		if text == "" {
			continue
		}

		items = append(items, Item{
			Line:    len(items),
			Indent:  match[1],
			Checked: strings.EqualFold(match[2], "x"),
			Title:   text,
			DueDate: due,
			RawLine: match[0],
		})
	}

	return items
}

func (s *service) GetStats(items []Item) Stats {
	total := len(items)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, it := range items {
		if it.Checked {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

func (s *service) Render(items []RenderItem) string {
	var b strings.Builder
	for _, it := range items {
		if it.Checked {
			b.WriteString(CheckboxChecked)
		} else {
			b.WriteString(CheckboxUnchecked)
		}
		b.WriteByte(' ')
		b.WriteString(it.Title)
		if it.Note != "" {
			b.WriteString(" (")
			b.WriteString(it.Note)
			b.WriteByte(')')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
