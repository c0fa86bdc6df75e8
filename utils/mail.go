package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/velmart/velmart-api/config"
)

type EmailData struct {
	Name      string
	Message   string
	ActionURL string
}

func SendEmail(cfg *config.Config, emailTo string, emailSubject string, data EmailData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		cfg.FromEmail,
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth("", cfg.FromEmail, cfg.FromEmailPassword, cfg.SMTPHost)

	if err := smtp.SendMail(cfg.SMTPAddress, auth, cfg.FromEmail, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
