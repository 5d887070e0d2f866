package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"invtrack/internal/config"
)

// Mailer wraps SMTP configuration for sending alert notification emails.
// A Mailer with no host configured is disabled and drops sends silently.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Enabled reports whether an SMTP host has been configured.
func (m *Mailer) Enabled() bool { return m.host != "" }

// Send delivers a plain-text notification email.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		return nil
	}
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
