//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/qr"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseTicket(t *testing.T, ctx *ServiceTestContext) (*users.User, *tickets.Ticket) {
	t.Helper()

	_, event, ticketType := SeedEventWithTickets(t, ctx)
	attendee := registerAttendee(t, ctx)

	ctx.Provider.Prime("ref-scan", 1500)
	ticket, err := ctx.TicketService.Purchase(context.Background(), attendee.ID, tickets.PurchaseRequest{
		EventID:          event.ID,
		TicketTypeID:     ticketType.ID,
		Quantity:         1,
		PaymentReference: "ref-scan",
	})
	require.NoError(t, err)
	return attendee, ticket
}

func TestScanService_ValidateQRCode(t *testing.T) {
	ctx := SetupServices(t)
	_, ticket := purchaseTicket(t, ctx)

	securityUser := persistence.CreateTestUser(t, users.RoleSecurity)
	require.NoError(t, ctx.Persistence.UserRepo.Create(context.Background(), securityUser))

	// The mailed confirmation carries the QR; its payload is what scanners
	// submit.
	require.Len(t, ctx.Mailer.confirmations, 1)
	qrPayload := mustQRPayload(t, ctx, ticket)

	result, err := ctx.ScanService.ValidateQRCode(context.Background(), securityUser.ID, qrPayload)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, result.TicketID)
	assert.Equal(t, ticket.EventID, result.EventID)
	assert.Equal(t, securityUser.ID, result.ScannedBy)

	// Ticket flagged scanned and the scan recorded
	scanned, err := ctx.Persistence.TicketRepo.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.True(t, scanned.Scanned)

	scans, err := ctx.Persistence.ScanRepo.ListByTicketID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Len(t, scans, 1)
}

func TestScanService_ValidateQRCode_Duplicate(t *testing.T) {
	ctx := SetupServices(t)
	_, ticket := purchaseTicket(t, ctx)

	securityUser := persistence.CreateTestUser(t, users.RoleSecurity)
	require.NoError(t, ctx.Persistence.UserRepo.Create(context.Background(), securityUser))

	qrPayload := mustQRPayload(t, ctx, ticket)

	_, err := ctx.ScanService.ValidateQRCode(context.Background(), securityUser.ID, qrPayload)
	require.NoError(t, err)

	_, err = ctx.ScanService.ValidateQRCode(context.Background(), securityUser.ID, qrPayload)
	assert.ErrorIs(t, err, tickets.ErrAlreadyScanned)
}

func TestScanService_ValidateQRCode_Tampered(t *testing.T) {
	ctx := SetupServices(t)
	_, ticket := purchaseTicket(t, ctx)

	securityUser := persistence.CreateTestUser(t, users.RoleSecurity)
	require.NoError(t, ctx.Persistence.UserRepo.Create(context.Background(), securityUser))

	qrPayload := mustQRPayload(t, ctx, ticket)
	tampered := qrPayload[:len(qrPayload)-2] + "xx"

	_, err := ctx.ScanService.ValidateQRCode(context.Background(), securityUser.ID, tampered)
	assert.ErrorIs(t, err, tickets.ErrInvalidQRCode)
}

// mustQRPayload regenerates the signed payload for the ticket. Generation is
// deterministic for a given ticket/event pair and secret.
func mustQRPayload(t *testing.T, ctx *ServiceTestContext, ticket *tickets.Ticket) string {
	t.Helper()

	generator, err := qr.NewSignedGenerator(testJWTSecret, testQRSalt, testBaseURL, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	code, err := generator.Generate(ticket.ID, ticket.EventID)
	require.NoError(t, err)
	return code.Payload
}
