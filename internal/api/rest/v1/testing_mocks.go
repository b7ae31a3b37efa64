//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/reports"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, reg users.Registration) (*users.User, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) RegisterWithRole(ctx context.Context, reg users.Registration, role string) (*users.User, error) {
	args := m.Called(ctx, reg, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*users.AuthSession, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AuthSession), args.Error(1)
}

func (m *MockAuthService) LoginWithIdentity(ctx context.Context, identity *users.ExternalIdentity) (*users.AuthSession, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AuthSession), args.Error(1)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)
	return args.Error(0)
}

// MockIdentityConnector is a mock implementation of IdentityConnector
type MockIdentityConnector struct {
	mock.Mock
}

func (m *MockIdentityConnector) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockIdentityConnector) Exchange(ctx context.Context, code string) (*users.ExternalIdentity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.ExternalIdentity), args.Error(1)
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, organizerID string, event *events.Event) (*events.Event, error) {
	args := m.Called(ctx, organizerID, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.Event), args.Error(1)
}

func (m *MockEventService) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, organizerID, eventID string, update events.EventUpdate) (*events.Event, error) {
	args := m.Called(ctx, organizerID, eventID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, organizerID, eventID string) error {
	args := m.Called(ctx, organizerID, eventID)
	return args.Error(0)
}

func (m *MockEventService) AttachImage(ctx context.Context, organizerID, eventID string, form *multipart.Form) (*events.Event, error) {
	args := m.Called(ctx, organizerID, eventID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

// MockTicketTypeService is a mock implementation of TicketTypeService
type MockTicketTypeService struct {
	mock.Mock
}

func (m *MockTicketTypeService) Create(ctx context.Context, organizerID string, ticketType *events.TicketType) (*events.TicketType, error) {
	args := m.Called(ctx, organizerID, ticketType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) ListByEventID(ctx context.Context, eventID string) ([]*events.TicketType, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) GetByID(ctx context.Context, ticketTypeID string) (*events.TicketType, error) {
	args := m.Called(ctx, ticketTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) Update(ctx context.Context, organizerID, ticketTypeID string, name *string, price *float64, quantity *int) (*events.TicketType, error) {
	args := m.Called(ctx, organizerID, ticketTypeID, name, price, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) Delete(ctx context.Context, organizerID, ticketTypeID string) error {
	args := m.Called(ctx, organizerID, ticketTypeID)
	return args.Error(0)
}

// MockTicketService is a mock implementation of TicketService
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) Purchase(ctx context.Context, userID string, req tickets.PurchaseRequest) (*tickets.Ticket, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.Ticket), args.Error(1)
}

func (m *MockTicketService) ListForUser(ctx context.Context, userID string) ([]*tickets.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tickets.Ticket), args.Error(1)
}

func (m *MockTicketService) GetByID(ctx context.Context, userID, ticketID string) (*tickets.Ticket, error) {
	args := m.Called(ctx, userID, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.Ticket), args.Error(1)
}

func (m *MockTicketService) Update(ctx context.Context, userID, ticketID string, req tickets.TicketUpdateRequest) (*tickets.Ticket, error) {
	args := m.Called(ctx, userID, ticketID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.Ticket), args.Error(1)
}

func (m *MockTicketService) Cancel(ctx context.Context, userID, ticketID string) error {
	args := m.Called(ctx, userID, ticketID)
	return args.Error(0)
}

// MockScanService is a mock implementation of ScanService
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) ValidateQRCode(ctx context.Context, scannerID, qrContent string) (*tickets.ScanResult, error) {
	args := m.Called(ctx, scannerID, qrContent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.ScanResult), args.Error(1)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) EventReport(ctx context.Context, organizerID, eventID string) (*reports.EventReport, error) {
	args := m.Called(ctx, organizerID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.EventReport), args.Error(1)
}

func (m *MockReportService) PlatformReport(ctx context.Context) (*reports.PlatformReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.PlatformReport), args.Error(1)
}
