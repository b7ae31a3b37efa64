package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence/models"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormTicketRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTicketRepository creates a new GORM-based TicketRepository implementation
func NewGormTicketRepository(db *gorm.DB, logger logger.Logger) (tickets.TicketRepository, error) {
	return &gormTicketRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTicketRepository) Create(ctx context.Context, ticket *tickets.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TicketModel{}
	model.FromDomain(ticket)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	r.logger.Info("Created ticket with id ", ticket.ID)
	return nil
}

func (r *gormTicketRepository) List(ctx context.Context, query *tickets.TicketQuery) ([]*tickets.Ticket, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TicketModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.EventID != "" {
		dbQuery = dbQuery.Where("event_id = ?", query.EventID)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}

	domainList := make([]*tickets.Ticket, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTicketRepository) GetByID(ctx context.Context, ticketID string) (*tickets.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).Where("id = ?", ticketID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ticket with ID %s not found", ticketID)
		}
		return nil, fmt.Errorf("failed to fetch ticket: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTicketRepository) UpdateByID(ctx context.Context, ticket *tickets.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TicketModel{}
	model.FromDomain(ticket)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	r.logger.Info("Updated ticket with id ", ticket.ID)
	return nil
}

func (r *gormTicketRepository) DeleteByID(ctx context.Context, ticketID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", ticketID).Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	r.logger.Info("Deleted ticket with id ", ticketID)
	return nil
}
