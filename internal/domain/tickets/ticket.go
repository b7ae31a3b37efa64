// Package tickets defines the ticket and scan entities together with the
// contracts for purchasing, validating and notifying about tickets.
package tickets

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Ticket entity. QRCodeRef names the stored QR image in media storage;
// Scanned flips to true on the first successful gate validation and never
// back.
type Ticket struct {
	ID            string    `validate:"required,uuid4"`
	EventID       string    `validate:"required,uuid4"`
	TicketTypeID  string    `validate:"required,uuid4"`
	UserID        string    `validate:"required,uuid4"`
	Email         string    `validate:"required,email"`
	PhoneNumber   string    `validate:"required"`
	Quantity      int       `validate:"required,min=1"`
	AmountPaid    float64   `validate:"min=0"`
	TransactionID string    `validate:"required,uuid4"`
	QRCodeRef     string    `validate:"omitempty"`
	Scanned       bool      `validate:"-"`
	PurchasedAt   time.Time `validate:"required"`
}

// Validate for validating Ticket struct
func (t *Ticket) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// TicketQuery filters and paginates ticket listings.
type TicketQuery struct {
	UserID    string `validate:"omitempty,uuid4"`
	EventID   string `validate:"omitempty,uuid4"`
	Limit     int    `validate:"omitempty,min=1,max=100"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=purchased_at amount_paid"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewTicketQuery creates a TicketQuery with default pagination.
func NewTicketQuery() *TicketQuery {
	return &TicketQuery{
		Limit:     50,
		SortBy:    "purchased_at",
		SortOrder: "desc",
	}
}

// Validate for validating TicketQuery struct
func (q *TicketQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for TicketQuery: %w", err)
	}

	return nil
}
