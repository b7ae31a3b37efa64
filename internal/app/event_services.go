package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/media"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

type eventService struct {
	eventRepo      events.EventRepository
	ticketTypeRepo events.TicketTypeRepository
	mediaStorage   media.Storage
	logger         logger.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(
	eventRepo events.EventRepository,
	ticketTypeRepo events.TicketTypeRepository,
	mediaStorage media.Storage,
	logger logger.Logger,
) (events.EventService, error) {
	return &eventService{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		mediaStorage:   mediaStorage,
		logger:         logger,
	}, nil
}

func (s *eventService) Create(ctx context.Context, organizerID string, event *events.Event) (*events.Event, error) {
	event.ID = uuid.NewString()
	event.OrganizerID = organizerID

	if event.EndsAt.Before(time.Now()) {
		return nil, fmt.Errorf("event end time must be in the future")
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	return s.eventRepo.List(ctx, query)
}

func (s *eventService) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) Update(ctx context.Context, organizerID, eventID string, update events.EventUpdate) (*events.Event, error) {
	event, err := s.ownedEvent(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		event.Name = *update.Name
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.StartsAt != nil {
		event.StartsAt = *update.StartsAt
	}
	if update.EndsAt != nil {
		event.EndsAt = *update.EndsAt
	}

	if event.EndsAt.Before(time.Now()) {
		return nil, fmt.Errorf("event end time must be in the future")
	}

	if err := s.eventRepo.UpdateByID(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, organizerID, eventID string) error {
	event, err := s.ownedEvent(ctx, organizerID, eventID)
	if err != nil {
		return err
	}

	ticketTypes, err := s.ticketTypeRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	for _, ticketType := range ticketTypes {
		if err := s.ticketTypeRepo.DeleteByID(ctx, ticketType.ID); err != nil {
			return err
		}
	}

	return s.eventRepo.DeleteByID(ctx, event.ID)
}

func (s *eventService) AttachImage(ctx context.Context, organizerID, eventID string, form *multipart.Form) (*events.Event, error) {
	event, err := s.ownedEvent(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	files := form.File["image"]
	if len(files) == 0 {
		files = form.File["files"]
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no image provided in upload request")
	}

	fileHeader := files[0]
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported image type: %s", ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}

	name := fmt.Sprintf("events/%s%s", event.ID, ext)
	url, err := s.mediaStorage.Save(ctx, name, contentType, data)
	if err != nil {
		return nil, err
	}

	event.ImageURL = url
	if err := s.eventRepo.UpdateByID(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("Attached image to event ", event.ID)
	return event, nil
}

// ownedEvent fetches the event and verifies ownership.
func (s *eventService) ownedEvent(ctx context.Context, organizerID, eventID string) (*events.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizerID {
		return nil, fmt.Errorf("event %s is not owned by the requesting organizer", eventID)
	}
	return event, nil
}
