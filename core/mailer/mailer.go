package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Notice is a merge-confirmation notification.
type Notice struct {
	// To is the submitter's email address.
	To string
	// SuggestionType identifies what was merged ("word" or "example").
	SuggestionType string
	// DeepLink points at the merged record in the dictionary frontend.
	DeepLink string
	// Payload is the full canonical result, attached as JSON.
	Payload any
}

// Sender delivers a single notice.
type Sender interface {
	Send(ctx context.Context, n Notice) error
}

// SMTPSender delivers notices over SMTP via gomail.
type SMTPSender struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewSMTPSender creates a Sender from the mail configuration.
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// Send composes and delivers the confirmation message. The context is
// accepted for interface symmetry; gomail dials synchronously.
func (s *SMTPSender) Send(_ context.Context, n Notice) error {
	payload, err := json.MarshalIndent(n.Payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode notice payload: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", fmt.Sprintf("Your %s suggestion has been merged", n.SuggestionType))
	m.SetBody("text/plain", fmt.Sprintf(
		"Your %s suggestion was approved and merged into the dictionary.\n\nView it here: %s\n\nMerged record:\n%s\n",
		n.SuggestionType, n.DeepLink, payload))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification to %s: %w", n.To, err)
	}
	return nil
}
