package models

import (
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	Role            string    `gorm:"not null;index;type:varchar(20)"`
	PhoneNumber     string    `gorm:"not null;type:varchar(32)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            m.Role,
		PhoneNumber:     m.PhoneNumber,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.PhoneNumber = u.PhoneNumber
	m.DateTimeCreated = u.DateTimeCreated
}
