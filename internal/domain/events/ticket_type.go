package events

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Ticket type names
const (
	TicketTypeRegular = "REGULAR"
	TicketTypeVIP     = "VIP"
	TicketTypeStudent = "STUDENT"
)

// TicketType entity. Quantity is the remaining number of sellable tickets;
// purchases decrement it, cancellations restore it.
type TicketType struct {
	ID       string  `validate:"required,uuid4"`
	EventID  string  `validate:"required,uuid4"`
	Name     string  `validate:"required,oneof=REGULAR VIP STUDENT"`
	Price    float64 `validate:"required,gt=0"`
	Quantity int     `validate:"min=0"`
}

// Validate for validating TicketType struct
func (t *TicketType) Validate() error {
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
