package mailer

import (
	"context"

	"student-productivity/pkg/log"
)

type logMailer struct {
	l log.Logger
}

// NewLogMailer returns a Mailer that only logs messages. Used when no
// SendGrid key is configured.
func NewLogMailer(l log.Logger) Mailer {
	return &logMailer{l: l}
}

func (m *logMailer) Send(ctx context.Context, msg Message) error {
	if msg.ToEmail == "" {
		return ErrNoRecipient
	}
	m.l.Infof(ctx, "mailer.log: to=%s subject=%q\n%s", msg.ToEmail, msg.Subject, msg.Text)
	return nil
}
