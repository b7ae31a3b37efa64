//go:build integration
// +build integration

package persistence

import (
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB              *gorm.DB
	UserRepo        users.UserRepository
	EventRepo       events.EventRepository
	TicketTypeRepo  events.TicketTypeRepository
	TicketRepo      tickets.TicketRepository
	ScanRepo        tickets.ScanRepository
	TransactionRepo payments.TransactionRepository
}

// SetupTestDB initializes an in-memory sqlite database with automatic cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := &config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	eventRepo, err := NewGormEventRepository(db, logger)
	require.NoError(t, err, "Failed to create event repository")

	ticketTypeRepo, err := NewGormTicketTypeRepository(db, logger)
	require.NoError(t, err, "Failed to create ticket type repository")

	ticketRepo, err := NewGormTicketRepository(db, logger)
	require.NoError(t, err, "Failed to create ticket repository")

	scanRepo, err := NewGormScanRepository(db, logger)
	require.NoError(t, err, "Failed to create scan repository")

	transactionRepo, err := NewGormTransactionRepository(db, logger)
	require.NoError(t, err, "Failed to create transaction repository")

	return &TestContext{
		DB:              db,
		UserRepo:        userRepo,
		EventRepo:       eventRepo,
		TicketTypeRepo:  ticketTypeRepo,
		TicketRepo:      ticketRepo,
		ScanRepo:        scanRepo,
		TransactionRepo: transactionRepo,
	}
}

// CreateTestUser creates a test user with default values
func CreateTestUser(t *testing.T, role string) *users.User {
	t.Helper()

	user := &users.User{
		ID:              uuid.NewString(),
		Email:           uuid.NewString()[:8] + "@example.com",
		Role:            role,
		PhoneNumber:     "+254712345678",
		DateTimeCreated: time.Now(),
	}
	require.NoError(t, user.SetPassword("Password123"))
	return user
}

// CreateTestEvent creates a test event owned by the given organizer
func CreateTestEvent(t *testing.T, organizerID string) *events.Event {
	t.Helper()

	startsAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	return &events.Event{
		ID:          uuid.NewString(),
		Name:        "Test Event",
		Description: "An event used in integration tests",
		Location:    "Nairobi",
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(4 * time.Hour),
		OrganizerID: organizerID,
	}
}

// CreateTestTicketType creates a test ticket type for the given event
func CreateTestTicketType(t *testing.T, eventID string) *events.TicketType {
	t.Helper()

	return &events.TicketType{
		ID:       uuid.NewString(),
		EventID:  eventID,
		Name:     events.TicketTypeRegular,
		Price:    1500,
		Quantity: 100,
	}
}

// CreateTestTicket creates a test ticket referencing the given aggregates
func CreateTestTicket(t *testing.T, user *users.User, eventID, ticketTypeID, transactionID string) *tickets.Ticket {
	t.Helper()

	return &tickets.Ticket{
		ID:            uuid.NewString(),
		EventID:       eventID,
		TicketTypeID:  ticketTypeID,
		UserID:        user.ID,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Quantity:      2,
		AmountPaid:    3000,
		TransactionID: transactionID,
		PurchasedAt:   time.Now().Truncate(time.Second),
	}
}

// CreateTestTransaction creates a completed test transaction
func CreateTestTransaction(t *testing.T) *payments.Transaction {
	t.Helper()

	return &payments.Transaction{
		ID:              uuid.NewString(),
		Amount:          3000,
		Status:          payments.StatusCompleted,
		Method:          payments.MethodPaystack,
		Reference:       "ref-" + uuid.NewString()[:12],
		DateTimeCreated: time.Now(),
	}
}
