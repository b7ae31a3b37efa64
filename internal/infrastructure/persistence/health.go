package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Health reports database connectivity for the liveness endpoint.
type Health struct {
	db *gorm.DB
}

// NewHealth creates a Health checker over the given connection.
func NewHealth(db *gorm.DB) *Health {
	return &Health{db: db}
}

// Ping verifies the underlying database connection is alive.
func (h *Health) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying database connection: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
