package app

import (
	"context"
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/reports"
	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
)

type reportService struct {
	aggregator reports.Aggregator
	eventRepo  events.EventRepository
	scanRepo   tickets.ScanRepository
	userRepo   users.UserRepository
	logger     logger.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	aggregator reports.Aggregator,
	eventRepo events.EventRepository,
	scanRepo tickets.ScanRepository,
	userRepo users.UserRepository,
	logger logger.Logger,
) (reports.ReportService, error) {
	return &reportService{
		aggregator: aggregator,
		eventRepo:  eventRepo,
		scanRepo:   scanRepo,
		userRepo:   userRepo,
		logger:     logger,
	}, nil
}

func (s *reportService) EventReport(ctx context.Context, requesterID, eventID string) (*reports.EventReport, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != requesterID {
		// Admins may pull the report for any event.
		requester, err := s.userRepo.GetByID(ctx, requesterID)
		if err != nil || requester.Role != users.RoleAdmin {
			return nil, fmt.Errorf("event %s is not owned by the requesting organizer", eventID)
		}
	}

	ticketsSold, revenue, byType, err := s.aggregator.EventSales(ctx, eventID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.scanRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Built sales report for event ", eventID)
	return &reports.EventReport{
		EventID:     event.ID,
		EventName:   event.Name,
		TicketsSold: ticketsSold,
		Revenue:     revenue,
		Attendance:  attendance,
		ByType:      byType,
	}, nil
}

func (s *reportService) PlatformReport(ctx context.Context) (*reports.PlatformReport, error) {
	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	totalEvents, totalTickets, totalRevenue, err := s.aggregator.PlatformTotals(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Built platform report")
	return &reports.PlatformReport{
		UsersByRole:  usersByRole,
		TotalEvents:  totalEvents,
		TotalTickets: totalTickets,
		TotalRevenue: totalRevenue,
	}, nil
}
