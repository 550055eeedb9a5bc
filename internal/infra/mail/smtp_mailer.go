// Package mail implements outbound transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"

	"vinmart/config"
	"vinmart/internal/domain/service"
)

const verificationSubject = "Vinmart Verification Code"

// smtpMailer sends mail through the configured SMTP relay using gomail.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.MailService, error) {
	if cfg.Mail == nil {
		return nil, errors.New("mail configuration is required")
	}

	dialer := gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)

	return &smtpMailer{
		dialer: dialer,
		from:   fmt.Sprintf("%q <%s>", "Vinmart Service", cfg.Mail.Username),
		logger: logger,
	}, nil
}

// SendVerificationCode emails the activation code. gomail dials synchronously,
// so callers decide whether a failure is fatal to their flow.
func (m *smtpMailer) SendVerificationCode(ctx context.Context, toEmail, name, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", verificationSubject)
	msg.SetBody("text/html", verificationBody(name, code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send verification email")
	}

	m.logger.Debug("verification email sent", slog.String("to", toEmail))

	return nil
}

func verificationBody(name, code string) string {
	return fmt.Sprintf(
		"<h3>Hello %s,</h3><p>Your Vinmart verification code is:</p><h2>%s</h2><p>Enter this code to activate your account.</p>",
		name, code,
	)
}
