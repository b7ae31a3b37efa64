package tickets

import (
	"context"
	"time"
)

// TicketRepository defines the interface for ticket persistence operations.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	List(ctx context.Context, query *TicketQuery) ([]*Ticket, error)
	GetByID(ctx context.Context, ticketID string) (*Ticket, error)
	UpdateByID(ctx context.Context, ticket *Ticket) error
	DeleteByID(ctx context.Context, ticketID string) error
}

// ScanRepository defines the interface for scan persistence operations.
type ScanRepository interface {
	Create(ctx context.Context, scan *Scan) error
	ListByTicketID(ctx context.Context, ticketID string) ([]*Scan, error)
	CountByEventID(ctx context.Context, eventID string) (int64, error)
}

// PurchaseRequest carries the fields required to book tickets.
type PurchaseRequest struct {
	EventID          string
	TicketTypeID     string
	Quantity         int
	PaymentReference string
}

// TicketUpdateRequest rebooks an existing ticket; quantity reductions are
// refunded through the payment provider.
type TicketUpdateRequest struct {
	TicketTypeID     string
	Quantity         int
	PaymentReference string
}

// TicketService defines ticket purchase and lifecycle operations.
type TicketService interface {
	// Purchase books tickets for the user once the referenced payment
	// verifies as completed, generates the QR code and emails it.
	Purchase(ctx context.Context, userID string, req PurchaseRequest) (*Ticket, error)

	// ListForUser fetches the tickets booked by the user.
	ListForUser(ctx context.Context, userID string) ([]*Ticket, error)

	// GetByID fetches a single ticket owned by the user.
	GetByID(ctx context.Context, userID, ticketID string) (*Ticket, error)

	// Update rebooks the ticket, refunding the difference when downsizing,
	// regenerates the QR code and re-sends the confirmation email.
	Update(ctx context.Context, userID, ticketID string, req TicketUpdateRequest) (*Ticket, error)

	// Cancel releases the ticket and restores the ticket type quantity.
	Cancel(ctx context.Context, userID, ticketID string) error
}

// ScanResult is returned on successful gate validation.
type ScanResult struct {
	TicketID  string
	EventID   string
	ScannedAt time.Time
	ScannedBy string
}

// Scan validation failure modes. Handlers map these to HTTP statuses.
var (
	ErrInvalidQRCode  = Error("invalid or tampered QR code")
	ErrTicketNotFound = Error("ticket not found")
	ErrAlreadyScanned = Error("ticket has already been scanned")
)

// Error is a sentinel error string.
type Error string

func (e Error) Error() string { return string(e) }

// ScanService defines gate validation operations.
type ScanService interface {
	// ValidateQRCode verifies the signed QR payload, marks the ticket
	// scanned and records who scanned it.
	ValidateQRCode(ctx context.Context, scannerID, qrContent string) (*ScanResult, error)
}

// QRCode couples the signed payload embedded in a QR image with the
// rendered PNG.
type QRCode struct {
	Payload string
	PNG     []byte
}

// QRCodeGenerator produces signed QR codes for tickets.
type QRCodeGenerator interface {
	// Generate signs the ticket/event pair and renders the QR PNG.
	Generate(ticketID, eventID string) (*QRCode, error)

	// Decode verifies a scanned payload and returns the embedded IDs.
	Decode(qrContent string) (ticketID, eventID string, err error)
}

// ConfirmationEmail carries everything the mailer needs to render a ticket
// confirmation.
type ConfirmationEmail struct {
	Recipient      string
	EventName      string
	EventLocation  string
	EventStartsAt  time.Time
	EventEndsAt    time.Time
	TicketTypeName string
	Quantity       int
	AmountPaid     float64
	IsUpdate       bool
	QRCodePNG      []byte
}

// ConfirmationMailer delivers ticket confirmations with the QR code attached.
type ConfirmationMailer interface {
	SendTicketConfirmation(ctx context.Context, email ConfirmationEmail) error
}
