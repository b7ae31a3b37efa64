package models

import (
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
)

// ScanModel is the GORM database model for scans (infrastructure concern)
type ScanModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	TicketID  string    `gorm:"not null;index;type:uuid"`
	ScannedAt time.Time `gorm:"not null"`
	ScannedBy string    `gorm:"not null;index;type:uuid"`
}

// TableName specifies the table name for GORM
func (ScanModel) TableName() string {
	return "scans"
}

// ToDomain converts GORM model to domain entity
func (m *ScanModel) ToDomain() *tickets.Scan {
	return &tickets.Scan{
		ID:        m.ID,
		TicketID:  m.TicketID,
		ScannedAt: m.ScannedAt,
		ScannedBy: m.ScannedBy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ScanModel) FromDomain(s *tickets.Scan) {
	m.ID = s.ID
	m.TicketID = s.TicketID
	m.ScannedAt = s.ScannedAt
	m.ScannedBy = s.ScannedBy
}
