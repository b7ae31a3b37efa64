package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence/models"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormTransactionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository implementation
func NewGormTransactionRepository(db *gorm.DB, logger logger.Logger) (payments.TransactionRepository, error) {
	return &gormTransactionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTransactionRepository) Create(ctx context.Context, transaction *payments.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(transaction)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	r.logger.Info("Created transaction with id ", transaction.ID)
	return nil
}

func (r *gormTransactionRepository) GetByID(ctx context.Context, transactionID string) (*payments.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).Where("id = ?", transactionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction with ID %s not found", transactionID)
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTransactionRepository) GetByReference(ctx context.Context, reference string) (*payments.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction with reference %s not found", reference)
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTransactionRepository) UpdateByID(ctx context.Context, transaction *payments.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(transaction)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	r.logger.Info("Updated transaction with id ", transaction.ID)
	return nil
}
