//go:build unit
// +build unit

package mailer

import (
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPMailer(t *testing.T) {
	settings := &config.MailSettings{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "noreply@example.com",
		Password: "secret",
		Sender:   "noreply@example.com",
	}

	mailer, err := NewSMTPMailer(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, mailer)
}

func TestNewSMTPMailer_InvalidSettings(t *testing.T) {
	settings := &config.MailSettings{
		Host:   "smtp.example.com",
		Port:   587,
		Sender: "not-an-email",
	}

	mailer, err := NewSMTPMailer(settings, testutil.SetupTestLogger(t))
	assert.Error(t, err)
	assert.Nil(t, mailer)
}

func TestRenderConfirmationBody(t *testing.T) {
	startsAt := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	email := tickets.ConfirmationEmail{
		Recipient:      "attendee@example.com",
		EventName:      "Launch Party",
		EventLocation:  "Nairobi",
		EventStartsAt:  startsAt,
		EventEndsAt:    startsAt.Add(4 * time.Hour),
		TicketTypeName: "VIP",
		Quantity:       2,
		AmountPaid:     5000,
	}

	body := renderConfirmationBody(email)
	assert.Contains(t, body, "Launch Party")
	assert.Contains(t, body, "Nairobi")
	assert.Contains(t, body, "2 x VIP")
	assert.Contains(t, body, "5000.00")
}
