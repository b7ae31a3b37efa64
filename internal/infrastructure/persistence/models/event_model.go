package models

import (
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
)

// EventModel is the GORM database model for events (infrastructure concern)
type EventModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"not null;type:varchar(255)"`
	Description string    `gorm:"not null;type:text"`
	Location    string    `gorm:"not null;type:text"`
	StartsAt    time.Time `gorm:"not null;index"`
	EndsAt      time.Time `gorm:"not null"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	OrganizerID string    `gorm:"not null;index;type:uuid"`
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *events.Event {
	return &events.Event{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
		ImageURL:    m.ImageURL,
		OrganizerID: m.OrganizerID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *events.Event) {
	m.ID = e.ID
	m.Name = e.Name
	m.Description = e.Description
	m.Location = e.Location
	m.StartsAt = e.StartsAt
	m.EndsAt = e.EndsAt
	m.ImageURL = e.ImageURL
	m.OrganizerID = e.OrganizerID
}
