package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"student-productivity/pkg/log"
)

const (
	defaultHost  = "https://api.sendgrid.com"
	sendEndpoint = "/v3/mail/send"
)

// SendGridConfig configures the SendGrid mailer.
type SendGridConfig struct {
	APIKey    string
	FromName  string
	FromEmail string
	// Host overrides the API host; empty means the public SendGrid API.
	Host string
}

type sendGridMailer struct {
	cfg        SendGridConfig
	from       *sgmail.Email
	subjPrefix string
	l          log.Logger
}

// NewSendGrid creates a Mailer backed by the SendGrid v3 API.
func NewSendGrid(cfg SendGridConfig, l log.Logger) Mailer {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	return &sendGridMailer{
		cfg:        cfg,
		from:       sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
		subjPrefix: "[" + cfg.FromName + "] ",
		l:          l,
	}
}

func (m *sendGridMailer) Send(ctx context.Context, msg Message) error {
	if msg.ToEmail == "" {
		return ErrNoRecipient
	}

	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToEmail))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		v3.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	req := sendgrid.GetRequest(m.cfg.APIKey, sendEndpoint, m.cfg.Host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(v3)

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		m.l.Errorf(ctx, "mailer.sendgrid.Send: %v", err)
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		m.l.Errorf(ctx, "mailer.sendgrid.Send: status %d: %s", res.StatusCode, res.Body)
		return fmt.Errorf("sendgrid: unexpected status %d", res.StatusCode)
	}

	m.l.Debugf(ctx, "mailer.sendgrid.Send: delivered %q to %s", msg.Subject, msg.ToEmail)
	return nil
}
