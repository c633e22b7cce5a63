package mailer

import (
	"fmt"

	"github.com/pazarlabs/pazar/config"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendWelcomeEmail(recipient string, username string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
}

func CreateNewMailer(config *config.Config) Mailer {
	if config.SMTPConfig.Host == "" {
		return &NoopMailer{}
	}

	dialer := gomail.NewDialer(config.SMTPConfig.Host, config.SMTPConfig.Port, config.SMTPConfig.Username, config.SMTPConfig.Password)

	return &SMTPMailer{dialer: dialer, sender: config.SMTPConfig.Sender}
}

func (m *SMTPMailer) SendWelcomeEmail(recipient string, username string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Welcome to Pazar")
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYour account has been created. Happy selling!", username))

	return m.dialer.DialAndSend(msg)
}

// NoopMailer stands in when no SMTP host is configured.
type NoopMailer struct{}

func (m *NoopMailer) SendWelcomeEmail(recipient string, username string) error {
	return nil
}
