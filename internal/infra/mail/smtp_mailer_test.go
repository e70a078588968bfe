package mail

import (
	"context"
	"testing"

	"stockroom/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPMailer_RequiresRelay(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{})
	assert.Error(t, err)

	_, err = NewSMTPMailer(&config.Config{SMTP: &config.SMTPConfig{}})
	assert.Error(t, err)
}

func TestNewSMTPMailer_ConfiguredRelay(t *testing.T) {
	cfg := &config.Config{
		SMTP: &config.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     587,
			Username: "mailer",
			Password: "secret",
			From:     "noreply@example.com",
		},
	}

	mailer, err := NewSMTPMailer(cfg)
	require.NoError(t, err)
	require.NotNil(t, mailer)
}

func TestSMTPMailer_SendPasswordReset_CanceledContext(t *testing.T) {
	cfg := &config.Config{
		SMTP: &config.SMTPConfig{
			Host: "smtp.example.com",
			Port: 587,
			From: "noreply@example.com",
		},
	}

	mailer, err := NewSMTPMailer(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = mailer.SendPasswordReset(ctx, "user@example.com", "https://app.example.com/verify?token=t")
	assert.ErrorIs(t, err, context.Canceled)
}
