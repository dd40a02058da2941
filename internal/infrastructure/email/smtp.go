// Package email implements the email-sending port over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailSender satisfies notification.EmailSender. Each Send dials
// independently so one failed delivery cannot poison the next.
type SMTPEmailSender struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailSender(config SMTPConfig) *SMTPEmailSender {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	return &SMTPEmailSender{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailSender) Send(ctx context.Context, toAddress, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", toAddress)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}
