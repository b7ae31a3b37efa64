package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

func validateStruct(v interface{}) error {
	validate := validator.New()

	if err := validate.RegisterValidation("phoneValidation", validators.PhoneValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("passwordValidation", validators.PasswordValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(v)
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

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,phoneValidation"`
	Password    string `json:"password" validate:"required,passwordValidation"`
	Role        string `json:"role" validate:"omitempty,oneof=ADMIN ORGANIZER ATTENDEE SECURITY"`
}

// Validate for validating RegisterRequest struct
func (r *RegisterRequest) Validate() error { return validateStruct(r) }

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error { return validateStruct(r) }

// PasswordResetRequest asks for a reset link
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Validate for validating PasswordResetRequest struct
func (r *PasswordResetRequest) Validate() error { return validateStruct(r) }

// PasswordResetConfirm carries the signed token and the new password
type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,passwordValidation"`
}

// Validate for validating PasswordResetConfirm struct
func (r *PasswordResetConfirm) Validate() error { return validateStruct(r) }

// UserResponse is the public representation of a user
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	PhoneNumber     string    `json:"phone_number"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role,
		PhoneNumber:     user.PhoneNumber,
		DateTimeCreated: user.DateTimeCreated,
	}
}

// AuthResponse carries the access token and the authenticated user
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// CreateEventRequest is the payload for creating an event
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
}

// Validate for validating CreateEventRequest struct
func (r *CreateEventRequest) Validate() error { return validateStruct(r) }

// UpdateEventRequest is the partial update payload; omitted fields stay
// unchanged
type UpdateEventRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// Validate for validating UpdateEventRequest struct
func (r *UpdateEventRequest) Validate() error { return validateStruct(r) }

// EventResponse is the public representation of an event
type EventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	ImageURL    string    `json:"image_url,omitempty"`
	OrganizerID string    `json:"organizer_id"`
}

func newEventResponse(event *events.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		ImageURL:    event.ImageURL,
		OrganizerID: event.OrganizerID,
	}
}

// CreateTicketTypeRequest is the payload for creating a ticket type
type CreateTicketTypeRequest struct {
	EventID  string  `json:"event_id" validate:"required,uuid4"`
	Name     string  `json:"name" validate:"required,oneof=REGULAR VIP STUDENT"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

// Validate for validating CreateTicketTypeRequest struct
func (r *CreateTicketTypeRequest) Validate() error { return validateStruct(r) }

// UpdateTicketTypeRequest is the partial update payload for a ticket type
type UpdateTicketTypeRequest struct {
	Name     *string  `json:"name" validate:"omitempty,oneof=REGULAR VIP STUDENT"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,min=0"`
}

// Validate for validating UpdateTicketTypeRequest struct
func (r *UpdateTicketTypeRequest) Validate() error { return validateStruct(r) }

// TicketTypeResponse is the public representation of a ticket type
type TicketTypeResponse struct {
	ID       string  `json:"id"`
	EventID  string  `json:"event_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func newTicketTypeResponse(ticketType *events.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:       ticketType.ID,
		EventID:  ticketType.EventID,
		Name:     ticketType.Name,
		Price:    ticketType.Price,
		Quantity: ticketType.Quantity,
	}
}

// PurchaseTicketRequest is the payload for booking tickets
type PurchaseTicketRequest struct {
	EventID          string `json:"event_id" validate:"required,uuid4"`
	TicketTypeID     string `json:"ticket_type_id" validate:"required,uuid4"`
	Quantity         int    `json:"quantity" validate:"required,min=1"`
	PaymentReference string `json:"payment_reference" validate:"required"`
}

// Validate for validating PurchaseTicketRequest struct
func (r *PurchaseTicketRequest) Validate() error { return validateStruct(r) }

// UpdateTicketRequest rebooks an existing ticket
type UpdateTicketRequest struct {
	TicketTypeID     string `json:"ticket_type_id" validate:"omitempty,uuid4"`
	Quantity         int    `json:"quantity" validate:"required,min=1"`
	PaymentReference string `json:"payment_reference"`
}

// Validate for validating UpdateTicketRequest struct
func (r *UpdateTicketRequest) Validate() error { return validateStruct(r) }

// TicketResponse is the public representation of a ticket
type TicketResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	TicketTypeID  string    `json:"ticket_type_id"`
	Quantity      int       `json:"quantity"`
	AmountPaid    float64   `json:"amount_paid"`
	TransactionID string    `json:"transaction_id"`
	QRCodeRef     string    `json:"qr_code_ref,omitempty"`
	Scanned       bool      `json:"scanned"`
	PurchasedAt   time.Time `json:"purchased_at"`
}

func newTicketResponse(ticket *tickets.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID,
		EventID:       ticket.EventID,
		TicketTypeID:  ticket.TicketTypeID,
		Quantity:      ticket.Quantity,
		AmountPaid:    ticket.AmountPaid,
		TransactionID: ticket.TransactionID,
		QRCodeRef:     ticket.QRCodeRef,
		Scanned:       ticket.Scanned,
		PurchasedAt:   ticket.PurchasedAt,
	}
}

// ScanRequest carries the scanned QR content
type ScanRequest struct {
	QRContent string `json:"qr_content" validate:"required"`
}

// Validate for validating ScanRequest struct
func (r *ScanRequest) Validate() error { return validateStruct(r) }

// ScanResponse acknowledges a successful gate validation
type ScanResponse struct {
	TicketID  string    `json:"ticket_id"`
	EventID   string    `json:"event_id"`
	ScannedAt time.Time `json:"scanned_at"`
	ScannedBy string    `json:"scanned_by"`
}
