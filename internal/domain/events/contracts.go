package events

import (
	"context"
	"mime/multipart"
	"time"
)

// EventRepository defines the interface for event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, query *EventQuery) ([]*Event, error)
	GetByID(ctx context.Context, eventID string) (*Event, error)
	UpdateByID(ctx context.Context, event *Event) error
	DeleteByID(ctx context.Context, eventID string) error
}

// TicketTypeRepository defines the interface for ticket type persistence
// operations.
type TicketTypeRepository interface {
	Create(ctx context.Context, ticketType *TicketType) error
	ListByEventID(ctx context.Context, eventID string) ([]*TicketType, error)
	GetByID(ctx context.Context, ticketTypeID string) (*TicketType, error)
	UpdateByID(ctx context.Context, ticketType *TicketType) error
	DeleteByID(ctx context.Context, ticketTypeID string) error

	// AdjustQuantity atomically adds delta to the remaining quantity and
	// fails when the result would drop below zero.
	AdjustQuantity(ctx context.Context, ticketTypeID string, delta int) error
}

// EventUpdate carries the mutable event fields; nil pointers leave a field
// unchanged.
type EventUpdate struct {
	Name        *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
}

// EventService defines event management operations.
type EventService interface {
	// Create registers a new event owned by the organizer.
	Create(ctx context.Context, organizerID string, event *Event) (*Event, error)

	// List fetches events considering the query filter.
	List(ctx context.Context, query *EventQuery) ([]*Event, error)

	// GetByID fetches a single event.
	GetByID(ctx context.Context, eventID string) (*Event, error)

	// Update applies the partial update. Only the owning organizer may call it.
	Update(ctx context.Context, organizerID, eventID string, update EventUpdate) (*Event, error)

	// Delete removes the event. Only the owning organizer may call it.
	Delete(ctx context.Context, organizerID, eventID string) error

	// AttachImage stores the uploaded artwork and records its URL on the event.
	AttachImage(ctx context.Context, organizerID, eventID string, form *multipart.Form) (*Event, error)
}

// TicketTypeService defines ticket type management operations.
type TicketTypeService interface {
	Create(ctx context.Context, organizerID string, ticketType *TicketType) (*TicketType, error)
	ListByEventID(ctx context.Context, eventID string) ([]*TicketType, error)
	GetByID(ctx context.Context, ticketTypeID string) (*TicketType, error)
	Update(ctx context.Context, organizerID, ticketTypeID string, name *string, price *float64, quantity *int) (*TicketType, error)
	Delete(ctx context.Context, organizerID, ticketTypeID string) error
}
