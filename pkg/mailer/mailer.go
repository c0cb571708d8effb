package mailer

import (
	"context"
	"errors"
)

var ErrNoRecipient = errors.New("mailer: message has no recipient")

// Message is a single outgoing email.
type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers email messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
