package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Sender delivers one message to one recipient
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through an SMTP relay. Every call opens a fresh
// session: connect, STARTTLS, authenticate, transmit, close. A failure
// affects only that message.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send implements Sender
func (s *SMTPSender) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = s.username
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("can't send email to %s: %w", to, err)
	}
	return nil
}
