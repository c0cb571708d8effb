package usecase

import (
	"fmt"
	"strings"

	"student-productivity/internal/checklist"
	"student-productivity/internal/reminder"
	"student-productivity/pkg/mailer"
)

// renderMessage formats a digest as a plain-text checklist email.
func renderMessage(cl checklist.Service, d reminder.Digest) mailer.Message {
	var parts []string
	if n := len(d.Overdue); n > 0 {
		parts = append(parts, fmt.Sprintf("%d overdue", n))
	}
	if n := len(d.Urgent); n > 0 {
		parts = append(parts, fmt.Sprintf("%d due soon", n))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", d.User.Username)
	if len(d.Overdue) > 0 {
		b.WriteString("Overdue:\n")
		b.WriteString(cl.Render(renderItems(d.Overdue)))
		b.WriteString("\n")
	}
	if len(d.Urgent) > 0 {
		b.WriteString("Due today or tomorrow:\n")
		b.WriteString(cl.Render(renderItems(d.Urgent)))
		b.WriteString("\n")
	}
	b.WriteString("Good luck!\n")

	return mailer.Message{
		ToName:  d.User.Username,
		ToEmail: d.User.Email,
		Subject: "Study reminder: " + strings.Join(parts, ", "),
		Text:    b.String(),
	}
}

func renderItems(items []reminder.Item) []checklist.RenderItem {
	out := make([]checklist.RenderItem, len(items))
	for i, it := range items {
		title := fmt.Sprintf("%s: %s", it.Course, it.Title)
		if it.Kind != reminder.KindTask && it.Kind != "" {
			title = fmt.Sprintf("%s: %s [%s]", it.Course, it.Title, it.Kind)
		}
		out[i] = checklist.RenderItem{Title: title, Note: it.Display.Text}
	}
	return out
}
