//go:build unit
// +build unit

package qr

import (
	"testing"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-key-for-qr-codes-0123456789"
	testSalt    = "qr-code-salt"
	testBaseURL = "https://tickets.example.com"
)

func setupGenerator(t *testing.T) tickets.QRCodeGenerator {
	t.Helper()

	generator, err := NewSignedGenerator(testSecret, testSalt, testBaseURL, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return generator
}

func TestSignedGenerator_GenerateAndDecode(t *testing.T) {
	generator := setupGenerator(t)

	ticketID := uuid.NewString()
	eventID := uuid.NewString()

	code, err := generator.Generate(ticketID, eventID)
	require.NoError(t, err)
	assert.NotEmpty(t, code.PNG)
	assert.Contains(t, code.Payload, testBaseURL+"/validate_ticket?id=")

	decodedTicketID, decodedEventID, err := generator.Decode(code.Payload)
	require.NoError(t, err)
	assert.Equal(t, ticketID, decodedTicketID)
	assert.Equal(t, eventID, decodedEventID)
}

func TestSignedGenerator_Decode_BareToken(t *testing.T) {
	generator := setupGenerator(t)

	ticketID := uuid.NewString()
	eventID := uuid.NewString()

	code, err := generator.Generate(ticketID, eventID)
	require.NoError(t, err)

	// Strip the URL prefix; scanners sometimes submit the raw token.
	token := code.Payload[len(testBaseURL+"/validate_ticket?id="):]

	decodedTicketID, decodedEventID, err := generator.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, ticketID, decodedTicketID)
	assert.Equal(t, eventID, decodedEventID)
}

func TestSignedGenerator_Decode_Tampered(t *testing.T) {
	generator := setupGenerator(t)

	code, err := generator.Generate(uuid.NewString(), uuid.NewString())
	require.NoError(t, err)

	tampered := code.Payload[:len(code.Payload)-2] + "xx"
	_, _, err = generator.Decode(tampered)
	assert.ErrorIs(t, err, tickets.ErrInvalidQRCode)
}

func TestSignedGenerator_Decode_WrongSecret(t *testing.T) {
	generator := setupGenerator(t)

	other, err := NewSignedGenerator("another-secret-key-0123456789abcdef", testSalt, testBaseURL, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	code, err := other.Generate(uuid.NewString(), uuid.NewString())
	require.NoError(t, err)

	_, _, err = generator.Decode(code.Payload)
	assert.ErrorIs(t, err, tickets.ErrInvalidQRCode)
}

func TestNewSignedGenerator_EmptySecret(t *testing.T) {
	_, err := NewSignedGenerator("", testSalt, testBaseURL, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
