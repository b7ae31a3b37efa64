package models

import (
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/payments"
)

// TransactionModel is the GORM database model for payment transactions
// (infrastructure concern)
type TransactionModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Amount          float64   `gorm:"not null"`
	Status          string    `gorm:"not null;type:varchar(20)"`
	Method          string    `gorm:"not null;type:varchar(20)"`
	Reference       string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts GORM model to domain entity
func (m *TransactionModel) ToDomain() *payments.Transaction {
	return &payments.Transaction{
		ID:              m.ID,
		Amount:          m.Amount,
		Status:          m.Status,
		Method:          m.Method,
		Reference:       m.Reference,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TransactionModel) FromDomain(t *payments.Transaction) {
	m.ID = t.ID
	m.Amount = t.Amount
	m.Status = t.Status
	m.Method = t.Method
	m.Reference = t.Reference
	m.DateTimeCreated = t.DateTimeCreated
}
