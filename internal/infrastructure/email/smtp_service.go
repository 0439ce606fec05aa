package email

import (
	"context"
	"fmt"
	"net/smtp"

	"library-catalog/internal/config"
)

// WelcomeEmailData carries everything the welcome template needs.
type WelcomeEmailData struct {
	Name  string
	Email string
}

// EmailService sends transactional mail.
type EmailService interface {
	SendWelcomeEmail(ctx context.Context, data WelcomeEmailData) error
}

type smtpEmailService struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPEmailService builds the net/smtp-backed sender. With no username
// configured it authenticates anonymously (local mailcatcher setups).
func NewSMTPEmailService(cfg config.SMTPConfig) EmailService {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &smtpEmailService{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

func (s *smtpEmailService) SendWelcomeEmail(_ context.Context, data WelcomeEmailData) error {
	subject := "Welcome to Library Catalog"
	body := fmt.Sprintf(`Hi %s,

Your account has been created. You can now sign in and start managing
authors, publishers and books.

If you did not create this account, please ignore this email.`, data.Name)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, data.Email, subject, body))

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{data.Email}, msg); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}
