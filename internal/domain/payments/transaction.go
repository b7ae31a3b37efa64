// Package payments defines the transaction entity and the contract for
// external payment providers.
package payments

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Payment statuses
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

// Payment methods
const (
	MethodPaystack = "PAYSTACK"
	MethodMpesa    = "MPESA"
)

// Transaction entity. Reference is the provider-side identifier used for
// verification and refunds.
type Transaction struct {
	ID              string    `validate:"required,uuid4"`
	Amount          float64   `validate:"required,gt=0"`
	Status          string    `validate:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
	Method          string    `validate:"required,oneof=PAYSTACK MPESA"`
	Reference       string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Transaction struct
func (t *Transaction) Validate() error {
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
