package auth

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer delivers password-reset links.
type Mailer interface {
	SendResetEmail(to, resetLink string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	User     string
	Password string
}

func (m *SMTPMailer) SendResetEmail(to, resetLink string) error {
	port, err := strconv.Atoi(m.Port)
	if err != nil {
		return fmt.Errorf("invalid SMTP port: %v", err)
	}

	body := fmt.Sprintf("<html><body><p>To reset your password, follow <a href='%s'>this link</a>. The link expires in one hour.</p></body></html>", resetLink)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password recovery")
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.Host, port, m.User, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %v", err)
	}
	return nil
}
