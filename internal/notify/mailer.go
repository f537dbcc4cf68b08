package notify

import (
	"context"

	"taxpro-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds outgoing mail settings
type SMTPConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Sender string
}

// Mailer sends HTML email over SMTP. Without a host it only logs.
type Mailer struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

// NewMailer creates a Mailer
func NewMailer(cfg SMTPConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	if cfg.Host != "" {
		port := cfg.Port
		if port == 0 {
			port = 465
		}
		m.dialer = gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Pass)
	}
	return m
}

// Enabled reports whether SMTP is configured
func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

// BuildMessage assembles the message Send would deliver
func (m *Mailer) BuildMessage(to, subject, htmlBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}

// Send delivers one email
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"to": to, "subject": subject})
	if m.dialer == nil {
		log.Debug("SMTP not configured, skipping email")
		return nil
	}

	if err := m.dialer.DialAndSend(m.BuildMessage(to, subject, htmlBody)); err != nil {
		log.WithError(err).Warn("Failed to send email")
		return err
	}

	log.Info("Email sent")
	return nil
}
