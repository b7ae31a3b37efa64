package app

import (
	"context"
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"github.com/google/uuid"
)

type ticketTypeService struct {
	ticketTypeRepo events.TicketTypeRepository
	eventRepo      events.EventRepository
	logger         logger.Logger
}

// NewTicketTypeService creates a new instance of TicketTypeService
func NewTicketTypeService(
	ticketTypeRepo events.TicketTypeRepository,
	eventRepo events.EventRepository,
	logger logger.Logger,
) (events.TicketTypeService, error) {
	return &ticketTypeService{
		ticketTypeRepo: ticketTypeRepo,
		eventRepo:      eventRepo,
		logger:         logger,
	}, nil
}

func (s *ticketTypeService) Create(ctx context.Context, organizerID string, ticketType *events.TicketType) (*events.TicketType, error) {
	event, err := s.eventRepo.GetByID(ctx, ticketType.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizerID {
		return nil, fmt.Errorf("event %s is not owned by the requesting organizer", event.ID)
	}

	ticketType.ID = uuid.NewString()
	if err := s.ticketTypeRepo.Create(ctx, ticketType); err != nil {
		return nil, err
	}
	return ticketType, nil
}

func (s *ticketTypeService) ListByEventID(ctx context.Context, eventID string) ([]*events.TicketType, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.ticketTypeRepo.ListByEventID(ctx, eventID)
}

func (s *ticketTypeService) GetByID(ctx context.Context, ticketTypeID string) (*events.TicketType, error) {
	return s.ticketTypeRepo.GetByID(ctx, ticketTypeID)
}

func (s *ticketTypeService) Update(ctx context.Context, organizerID, ticketTypeID string, name *string, price *float64, quantity *int) (*events.TicketType, error) {
	ticketType, err := s.ownedTicketType(ctx, organizerID, ticketTypeID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		ticketType.Name = *name
	}
	if price != nil {
		ticketType.Price = *price
	}
	if quantity != nil {
		ticketType.Quantity = *quantity
	}

	if err := s.ticketTypeRepo.UpdateByID(ctx, ticketType); err != nil {
		return nil, err
	}
	return ticketType, nil
}

func (s *ticketTypeService) Delete(ctx context.Context, organizerID, ticketTypeID string) error {
	ticketType, err := s.ownedTicketType(ctx, organizerID, ticketTypeID)
	if err != nil {
		return err
	}
	return s.ticketTypeRepo.DeleteByID(ctx, ticketType.ID)
}

func (s *ticketTypeService) ownedTicketType(ctx context.Context, organizerID, ticketTypeID string) (*events.TicketType, error) {
	ticketType, err := s.ticketTypeRepo.GetByID(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, ticketType.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizerID {
		return nil, fmt.Errorf("ticket type %s is not owned by the requesting organizer", ticketTypeID)
	}

	return ticketType, nil
}
