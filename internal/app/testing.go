//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/qr"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/storage"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/signer"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/testutil"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/token"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-jwt-secret-0123456789abcdefghij"
	testQRSalt    = "qr-code"
	testResetSalt = "reset-password-salt"
	testBaseURL   = "https://tickets.example.com"
)

// fakeProvider is a payments.Provider that approves references it was
// primed with.
type fakeProvider struct {
	name     string
	payments map[string]float64
	refunds  []float64
}

func newFakeProvider(name string) *fakeProvider {
	return &fakeProvider{
		name:     name,
		payments: make(map[string]float64),
	}
}

func (p *fakeProvider) Prime(reference string, amount float64) {
	p.payments[reference] = amount
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Verify(_ context.Context, reference string) (*payments.Verification, error) {
	amount, ok := p.payments[reference]
	return &payments.Verification{
		Reference: reference,
		Amount:    amount,
		Succeeded: ok,
	}, nil
}

func (p *fakeProvider) Refund(_ context.Context, reference string, amount float64) error {
	if _, ok := p.payments[reference]; !ok {
		return fmt.Errorf("unknown reference %s", reference)
	}
	p.refunds = append(p.refunds, amount)
	return nil
}

// fakeMailer records outgoing mail instead of sending it.
type fakeMailer struct {
	confirmations []tickets.ConfirmationEmail
	resetLinks    []string
}

func (m *fakeMailer) SendTicketConfirmation(_ context.Context, email tickets.ConfirmationEmail) error {
	m.confirmations = append(m.confirmations, email)
	return nil
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, _ string, resetLink string) error {
	m.resetLinks = append(m.resetLinks, resetLink)
	return nil
}

// ServiceTestContext wires every application service over an in-memory
// database with fake external connectors.
type ServiceTestContext struct {
	Persistence *persistence.TestContext
	Provider    *fakeProvider
	Mailer      *fakeMailer

	AuthService       users.AuthService
	EventService      events.EventService
	TicketTypeService events.TicketTypeService
	TicketService     tickets.TicketService
	ScanService       tickets.ScanService
}

// SetupServices builds the full application service graph for tests.
func SetupServices(t *testing.T) *ServiceTestContext {
	t.Helper()

	persistenceCtx := persistence.SetupTestDB(t)
	logger := testutil.SetupTestLogger(t)

	provider := newFakeProvider(payments.MethodPaystack)
	mailer := &fakeMailer{}

	qrGenerator, err := qr.NewSignedGenerator(testJWTSecret, testQRSalt, testBaseURL, logger)
	require.NoError(t, err)

	mediaStorage, err := storage.NewLocalMediaStorage(t.TempDir(), logger)
	require.NoError(t, err)

	authService, err := NewAuthService(
		persistenceCtx.UserRepo,
		token.NewIssuer(testJWTSecret, time.Hour),
		signer.New(testJWTSecret, testResetSalt),
		time.Hour,
		testBaseURL,
		mailer,
		logger,
	)
	require.NoError(t, err)

	eventService, err := NewEventService(persistenceCtx.EventRepo, persistenceCtx.TicketTypeRepo, mediaStorage, logger)
	require.NoError(t, err)

	ticketTypeService, err := NewTicketTypeService(persistenceCtx.TicketTypeRepo, persistenceCtx.EventRepo, logger)
	require.NoError(t, err)

	ticketService, err := NewTicketService(
		persistenceCtx.TicketRepo,
		persistenceCtx.TicketTypeRepo,
		persistenceCtx.EventRepo,
		persistenceCtx.UserRepo,
		persistenceCtx.TransactionRepo,
		[]payments.Provider{provider},
		qrGenerator,
		mediaStorage,
		mailer,
		logger,
	)
	require.NoError(t, err)

	scanService, err := NewScanService(persistenceCtx.TicketRepo, persistenceCtx.ScanRepo, qrGenerator, logger)
	require.NoError(t, err)

	return &ServiceTestContext{
		Persistence: persistenceCtx,
		Provider:    provider,
		Mailer:      mailer,

		AuthService:       authService,
		EventService:      eventService,
		TicketTypeService: ticketTypeService,
		TicketService:     ticketService,
		ScanService:       scanService,
	}
}

// SeedEventWithTickets registers an organizer, an event and a REGULAR
// ticket type ready for purchase tests.
func SeedEventWithTickets(t *testing.T, ctx *ServiceTestContext) (*users.User, *events.Event, *events.TicketType) {
	t.Helper()

	organizer := persistence.CreateTestUser(t, users.RoleOrganizer)
	require.NoError(t, ctx.Persistence.UserRepo.Create(context.Background(), organizer))

	event := persistence.CreateTestEvent(t, organizer.ID)
	created, err := ctx.EventService.Create(context.Background(), organizer.ID, event)
	require.NoError(t, err)

	ticketType := &events.TicketType{
		EventID:  created.ID,
		Name:     events.TicketTypeRegular,
		Price:    1500,
		Quantity: 10,
	}
	createdType, err := ctx.TicketTypeService.Create(context.Background(), organizer.ID, ticketType)
	require.NoError(t, err)

	return organizer, created, createdType
}
