package models

import (
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
)

// TicketModel is the GORM database model for tickets (infrastructure concern)
type TicketModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	EventID       string    `gorm:"not null;index;type:uuid"`
	TicketTypeID  string    `gorm:"not null;index;type:uuid"`
	UserID        string    `gorm:"not null;index;type:uuid"`
	Email         string    `gorm:"not null;type:varchar(255)"`
	PhoneNumber   string    `gorm:"not null;type:varchar(32)"`
	Quantity      int       `gorm:"not null"`
	AmountPaid    float64   `gorm:"not null"`
	TransactionID string    `gorm:"not null;index;type:uuid"`
	QRCodeRef     string    `gorm:"type:varchar(512)"`
	Scanned       bool      `gorm:"not null;default:false"`
	PurchasedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}

// ToDomain converts GORM model to domain entity
func (m *TicketModel) ToDomain() *tickets.Ticket {
	return &tickets.Ticket{
		ID:            m.ID,
		EventID:       m.EventID,
		TicketTypeID:  m.TicketTypeID,
		UserID:        m.UserID,
		Email:         m.Email,
		PhoneNumber:   m.PhoneNumber,
		Quantity:      m.Quantity,
		AmountPaid:    m.AmountPaid,
		TransactionID: m.TransactionID,
		QRCodeRef:     m.QRCodeRef,
		Scanned:       m.Scanned,
		PurchasedAt:   m.PurchasedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TicketModel) FromDomain(t *tickets.Ticket) {
	m.ID = t.ID
	m.EventID = t.EventID
	m.TicketTypeID = t.TicketTypeID
	m.UserID = t.UserID
	m.Email = t.Email
	m.PhoneNumber = t.PhoneNumber
	m.Quantity = t.Quantity
	m.AmountPaid = t.AmountPaid
	m.TransactionID = t.TransactionID
	m.QRCodeRef = t.QRCodeRef
	m.Scanned = t.Scanned
	m.PurchasedAt = t.PurchasedAt
}
