package tickets

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Scan records a single gate validation of a ticket.
type Scan struct {
	ID        string    `validate:"required,uuid4"`
	TicketID  string    `validate:"required,uuid4"`
	ScannedAt time.Time `validate:"required"`
	ScannedBy string    `validate:"required,uuid4"`
}

// Validate for validating Scan struct
func (s *Scan) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
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
