package persistence

import (
	"context"
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence/models"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormScanRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScanRepository creates a new GORM-based ScanRepository implementation
func NewGormScanRepository(db *gorm.DB, logger logger.Logger) (tickets.ScanRepository, error) {
	return &gormScanRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormScanRepository) Create(ctx context.Context, scan *tickets.Scan) error {
	if err := scan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScanModel{}
	model.FromDomain(scan)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create scan: %w", err)
	}

	r.logger.Info("Recorded scan for ticket ", scan.TicketID)
	return nil
}

func (r *gormScanRepository) ListByTicketID(ctx context.Context, ticketID string) ([]*tickets.Scan, error) {
	var modelList []*models.ScanModel
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("scanned_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scans: %w", err)
	}

	domainList := make([]*tickets.Scan, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormScanRepository) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ScanModel{}).
		Joins("JOIN tickets ON tickets.id = scans.ticket_id").
		Where("tickets.event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return count, nil
}
