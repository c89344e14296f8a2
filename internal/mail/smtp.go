// Package mail delivers rendered emails. SMTPSender talks to a real SMTP
// relay; LogSender writes messages to the structured log for local
// development.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/domain"
)

const sendTimeout = 15 * time.Second

// SMTPSender sends each email over its own SMTP session, so concurrent
// sends never share a connection.
type SMTPSender struct {
	host        string
	opts        []gomail.Option
	fromName    string
	fromAddress string
}

// NewSMTPSender builds a sender for cfg.SMTPHost. TLS is used when the server
// offers it. PLAIN auth is enabled only when a username is configured.
func NewSMTPSender(cfg config.Mail) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTimeout(sendTimeout),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUsername),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	// Fail at startup on a bad host or option rather than on the first send.
	if _, err := gomail.NewClient(cfg.SMTPHost, opts...); err != nil {
		return nil, fmt.Errorf("mail.NewSMTPSender: %w", err)
	}
	return &SMTPSender{host: cfg.SMTPHost, opts: opts, fromName: cfg.FromName, fromAddress: cfg.FromAddress}, nil
}

// Send delivers a single email.
func (s *SMTPSender) Send(ctx context.Context, email domain.Email) error {
	msg, err := newMessage(s.fromName, s.fromAddress, email)
	if err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: %w", err)
	}
	client, err := gomail.NewClient(s.host, s.opts...)
	if err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: %w", err)
	}
	return nil
}

// newMessage builds the MIME message. Addresses are validated here so a bad
// recipient fails before any network traffic.
func newMessage(fromName, fromAddress string, email domain.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(fromName, fromAddress); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.AddToFormat(email.ToName, email.ToAddress); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.HTML)
	return msg, nil
}
