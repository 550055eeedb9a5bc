package service

import "context"

// MailService defines the interface for outbound transactional email.
type MailService interface {
	// SendVerificationCode emails the activation code to a freshly signed-up
	// or not-yet-activated account.
	SendVerificationCode(ctx context.Context, toEmail, name, code string) error
}
