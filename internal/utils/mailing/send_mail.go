package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/tkloetzk/mealplanner-sub001/internal/utils"
)

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	MailConfig struct {
		SMTPHost     string
		SMTPPort     int
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	// sender is satisfied by *gomail.Dialer.
	sender interface {
		DialAndSend(m ...*gomail.Message) error
	}

	smtpMailer struct {
		config MailConfig
		dialer sender
	}
)

func LoadMailConfig(cfg utils.Config) (MailConfig, error) {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return MailConfig{}, fmt.Errorf("invalid SMTP_PORT %q: %w", cfg.SMTPPort, err)
	}
	return MailConfig{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     port,
		SMTPSender:   cfg.SMTPSenderName,
		SMTPEmail:    cfg.SMTPAuthEmail,
		SMTPPassword: cfg.SMTPAuthPassword,
	}, nil
}

func NewMailer(config MailConfig) Mailer {
	return &smtpMailer{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPEmail, config.SMTPPassword),
	}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	return m.dialer.DialAndSend(m.message(toEmail, subject, body))
}

func (m *smtpMailer) message(toEmail, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return msg
}
