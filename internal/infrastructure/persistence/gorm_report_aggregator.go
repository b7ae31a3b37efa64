package persistence

import (
	"context"
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/domain/reports"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence/models"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormReportAggregator struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReportAggregator creates a new GORM-based Aggregator implementation
// for report queries
func NewGormReportAggregator(db *gorm.DB, logger logger.Logger) (reports.Aggregator, error) {
	return &gormReportAggregator{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReportAggregator) EventSales(ctx context.Context, eventID string) (int64, float64, []reports.TypeBreakdown, error) {
	type salesRow struct {
		TicketTypeName string
		TicketsSold    int64
		Revenue        float64
	}
	var rows []salesRow
	err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Select("ticket_types.name as ticket_type_name, coalesce(sum(tickets.quantity), 0) as tickets_sold, coalesce(sum(tickets.amount_paid), 0) as revenue").
		Joins("JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id").
		Where("tickets.event_id = ?", eventID).
		Group("ticket_types.name").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to aggregate event sales: %w", err)
	}

	var ticketsSold int64
	var revenue float64
	byType := make([]reports.TypeBreakdown, len(rows))
	for i, row := range rows {
		ticketsSold += row.TicketsSold
		revenue += row.Revenue
		byType[i] = reports.TypeBreakdown{
			TicketTypeName: row.TicketTypeName,
			TicketsSold:    row.TicketsSold,
			Revenue:        row.Revenue,
		}
	}
	return ticketsSold, revenue, byType, nil
}

func (r *gormReportAggregator) PlatformTotals(ctx context.Context) (int64, int64, float64, error) {
	var totalEvents int64
	if err := r.db.WithContext(ctx).Model(&models.EventModel{}).Count(&totalEvents).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count events: %w", err)
	}

	type ticketTotals struct {
		TotalTickets int64
		TotalRevenue float64
	}
	var totals ticketTotals
	err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Select("coalesce(sum(quantity), 0) as total_tickets, coalesce(sum(amount_paid), 0) as total_revenue").
		Scan(&totals).Error
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to aggregate ticket totals: %w", err)
	}

	return totalEvents, totals.TotalTickets, totals.TotalRevenue, nil
}
