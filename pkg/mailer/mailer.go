package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/salhdl/AI-Agent/config"
)

// Mailer delivers messages over SMTP. When no SMTP host is configured it
// runs in disabled mode and only logs the message, so development
// environments boot without a mail server.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
	logger  *zap.Logger
}

// NewMailer builds a Mailer from configuration.
func NewMailer(cfg *config.MailConfig, logger *zap.Logger) *Mailer {
	if cfg.SMTPHost == "" {
		logger.Warn("mail.smtp_host not set, mail delivery disabled")
		return &Mailer{enabled: false, logger: logger}
	}

	return &Mailer{
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:    cfg.From,
		enabled: true,
		logger:  logger,
	}
}

// Send delivers a plain-text message to a single recipient. The SMTP
// exchange runs in a goroutine so the caller's context bounds the wait;
// a timed-out send is reported as an error but the goroutine is left to
// finish the exchange on its own.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if !m.enabled {
		m.logger.Info("mail delivery disabled, skipping send",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send mail to %s: %w", to, ctx.Err())
	}
}
