package models

import (
	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
)

// TicketTypeModel is the GORM database model for ticket types
// (infrastructure concern)
type TicketTypeModel struct {
	ID       string  `gorm:"primaryKey;type:uuid"`
	EventID  string  `gorm:"not null;index;type:uuid"`
	Name     string  `gorm:"not null;type:varchar(20)"`
	Price    float64 `gorm:"not null"`
	Quantity int     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TicketTypeModel) TableName() string {
	return "ticket_types"
}

// ToDomain converts GORM model to domain entity
func (m *TicketTypeModel) ToDomain() *events.TicketType {
	return &events.TicketType{
		ID:       m.ID,
		EventID:  m.EventID,
		Name:     m.Name,
		Price:    m.Price,
		Quantity: m.Quantity,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TicketTypeModel) FromDomain(t *events.TicketType) {
	m.ID = t.ID
	m.EventID = t.EventID
	m.Name = t.Name
	m.Price = t.Price
	m.Quantity = t.Quantity
}
