package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Event entity
type Event struct {
	ID          string    `validate:"required,uuid4"`
	Name        string    `validate:"required,min=1,max=255"`
	Description string    `validate:"required"`
	Location    string    `validate:"required"`
	StartsAt    time.Time `validate:"required"`
	EndsAt      time.Time `validate:"required"`
	ImageURL    string    `validate:"omitempty"`
	OrganizerID string    `validate:"required,uuid4"`
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	validate := validator.New()

	err := validate.Struct(e)
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

	if !e.StartsAt.Before(e.EndsAt) {
		return fmt.Errorf("event start time must be before end time")
	}

	return nil
}

// EventQuery filters and paginates event listings.
type EventQuery struct {
	OrganizerID string    `validate:"omitempty,uuid4"`
	From        time.Time `validate:"-"`
	Limit       int       `validate:"omitempty,min=1,max=100"`
	Offset      int       `validate:"omitempty,min=0"`
	SortBy      string    `validate:"omitempty,oneof=name starts_at"`
	SortOrder   string    `validate:"omitempty,oneof=asc desc"`
}

// NewEventQuery creates an EventQuery with default pagination.
func NewEventQuery() *EventQuery {
	return &EventQuery{
		Limit:     50,
		SortBy:    "starts_at",
		SortOrder: "asc",
	}
}

// Validate for validating EventQuery struct
func (q *EventQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for EventQuery: %w", err)
	}

	return nil
}
