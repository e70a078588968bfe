// Package mail implements outbound email over SMTP.
package mail

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"

	"stockroom/config"
	"stockroom/internal/domain/service"
)

const resetSubject = "A Reset Password Request Was Recieved For Your Account"

// smtpMailer is a concrete implementation of the Mailer interface using an
// authenticated SMTP relay.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp relay must be configured")
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}, nil
}

// SendPasswordReset emails the reset link. A transport failure is returned
// to the caller as-is; the usecase maps it to a delivery error.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, link string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "request canceled before sending mail")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", resetSubject)
	msg.SetBody("text/html", fmt.Sprintf(
		"<h2>Click on this link to reset your password:</h2><br><br><a href='%s'>%s</a>",
		link, link,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send password reset mail")
	}

	return nil
}
