package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail over SMTP via gomail.
type SMTPSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("create template manager: %w", err)
	}

	return &SMTPSender{
		config:    config,
		templates: tm,
		dialer:    gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (s *SMTPSender) send(to, subject, templateName string, data TemplateData) error {
	data.Subject = subject
	data.UserEmail = to

	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send %s to %s: %w", templateName, to, err)
	}
	return nil
}

func (s *SMTPSender) SendPasswordReset(to, resetURL string) error {
	return s.send(to, "Reset your password", "password_reset", TemplateData{
		ActionURL:  resetURL,
		ActionText: "Reset password",
	})
}

func (s *SMTPSender) SendPasswordResetConfirmation(to string) error {
	return s.send(to, "Your password was changed", "password_reset_done", TemplateData{})
}

func (s *SMTPSender) SendCompanySubmitted(to, companyName string) error {
	return s.send(to, "Company profile submitted", "company_submitted", TemplateData{
		CompanyName: companyName,
	})
}

// NoopSender is used when mail is disabled in configuration.
type NoopSender struct{}

func (NoopSender) SendPasswordReset(string, string) error     { return nil }
func (NoopSender) SendPasswordResetConfirmation(string) error { return nil }
func (NoopSender) SendCompanySubmitted(string, string) error  { return nil }
