package service

import "context"

// Mailer defines the interface for outbound transactional email.
// The only message this service sends is the password-reset link.
type Mailer interface {
	// SendPasswordReset emails the reset link to the given address.
	SendPasswordReset(ctx context.Context, to, link string) error
}
