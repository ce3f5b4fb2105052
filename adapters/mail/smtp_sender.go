package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/vedag812/netfolio-api/internal/application/service"
	"github.com/vedag812/netfolio-api/internal/config"
	"github.com/vedag812/netfolio-api/internal/domain/contact"
)

// smtpSender delivers contact-form submissions to the site owner's inbox
// over plain SMTP with auth.
type smtpSender struct {
	host     string
	port     string
	user     string
	password string
	to       string
}

func NewSMTPSender(cfg config.Config) (service.Mailer, error) {
	if cfg.Mail.SMTPHost == "" || cfg.Mail.User == "" {
		return nil, fmt.Errorf("mail smtp_host and user must be configured")
	}
	to := cfg.Mail.To
	if to == "" {
		to = cfg.Mail.User
	}
	port := cfg.Mail.SMTPPort
	if port == "" {
		port = "587"
	}
	return &smtpSender{
		host:     cfg.Mail.SMTPHost,
		port:     port,
		user:     cfg.Mail.User,
		password: cfg.Mail.Password,
		to:       to,
	}, nil
}

func (s *smtpSender) Send(ctx context.Context, msg contact.Message) error {
	subject := fmt.Sprintf("New Contact Form Submission from %s", msg.Name)
	body := strings.Join([]string{
		fmt.Sprintf("From: %s", s.user),
		fmt.Sprintf("To: %s", s.to),
		fmt.Sprintf("Reply-To: %s", msg.Email),
		fmt.Sprintf("Subject: %s", subject),
		"",
		fmt.Sprintf("Name: %s", msg.Name),
		fmt.Sprintf("Email: %s", msg.Email),
		"",
		msg.Body,
	}, "\r\n")

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	addr := s.host + ":" + s.port

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.user, []string{s.to}, []byte(body))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send contact mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
