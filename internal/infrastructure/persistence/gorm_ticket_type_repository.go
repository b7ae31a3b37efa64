package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence/models"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormTicketTypeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTicketTypeRepository creates a new GORM-based TicketTypeRepository implementation
func NewGormTicketTypeRepository(db *gorm.DB, logger logger.Logger) (events.TicketTypeRepository, error) {
	return &gormTicketTypeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTicketTypeRepository) Create(ctx context.Context, ticketType *events.TicketType) error {
	if err := ticketType.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TicketTypeModel{}
	model.FromDomain(ticketType)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket type: %w", err)
	}

	r.logger.Info("Created ticket type with id ", ticketType.ID)
	return nil
}

func (r *gormTicketTypeRepository) GetByID(ctx context.Context, ticketTypeID string) (*events.TicketType, error) {
	var model models.TicketTypeModel
	if err := r.db.WithContext(ctx).Where("id = ?", ticketTypeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ticket type with ID %s not found", ticketTypeID)
		}
		return nil, fmt.Errorf("failed to fetch ticket type: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTicketTypeRepository) ListByEventID(ctx context.Context, eventID string) ([]*events.TicketType, error) {
	var modelList []*models.TicketTypeModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("price asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticket types: %w", err)
	}

	domainList := make([]*events.TicketType, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTicketTypeRepository) UpdateByID(ctx context.Context, ticketType *events.TicketType) error {
	if err := ticketType.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TicketTypeModel{}
	model.FromDomain(ticketType)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket type: %w", err)
	}

	r.logger.Info("Updated ticket type with id ", ticketType.ID)
	return nil
}

func (r *gormTicketTypeRepository) AdjustQuantity(ctx context.Context, ticketTypeID string, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.TicketTypeModel{}).
		Where("id = ? AND quantity + ? >= 0", ticketTypeID, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust quantity of ticket type %s: %w", ticketTypeID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not enough tickets of type %s remain", ticketTypeID)
	}

	r.logger.Info("Adjusted quantity of ticket type ", ticketTypeID, " by ", delta)
	return nil
}

func (r *gormTicketTypeRepository) DeleteByID(ctx context.Context, ticketTypeID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", ticketTypeID).Delete(&models.TicketTypeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket type: %w", err)
	}

	r.logger.Info("Deleted ticket type with id ", ticketTypeID)
	return nil
}
