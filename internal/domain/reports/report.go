// Package reports defines the read models for organizer and admin
// reporting together with the aggregation contract the persistence layer
// implements.
package reports

import "context"

// TypeBreakdown is a per-ticket-type sales line in an event report.
type TypeBreakdown struct {
	TicketTypeName string  `json:"ticket_type_name"`
	TicketsSold    int64   `json:"tickets_sold"`
	Revenue        float64 `json:"revenue"`
}

// EventReport summarizes sales and attendance for a single event.
type EventReport struct {
	EventID     string          `json:"event_id"`
	EventName   string          `json:"event_name"`
	TicketsSold int64           `json:"tickets_sold"`
	Revenue     float64         `json:"revenue"`
	Attendance  int64           `json:"attendance"`
	ByType      []TypeBreakdown `json:"by_type"`
}

// PlatformReport summarizes platform-wide activity for admins.
type PlatformReport struct {
	UsersByRole  map[string]int64 `json:"users_by_role"`
	TotalEvents  int64            `json:"total_events"`
	TotalTickets int64            `json:"total_tickets"`
	TotalRevenue float64          `json:"total_revenue"`
}

// Aggregator performs the report aggregation queries.
type Aggregator interface {
	EventSales(ctx context.Context, eventID string) (ticketsSold int64, revenue float64, byType []TypeBreakdown, err error)
	PlatformTotals(ctx context.Context) (totalEvents, totalTickets int64, totalRevenue float64, err error)
}

// ReportService defines the reporting operations.
type ReportService interface {
	// EventReport builds the sales/attendance report for one event. Only
	// the owning organizer and admins may request it.
	EventReport(ctx context.Context, requesterID, eventID string) (*EventReport, error)

	// PlatformReport builds the platform totals report for admins.
	PlatformReport(ctx context.Context) (*PlatformReport, error)
}
