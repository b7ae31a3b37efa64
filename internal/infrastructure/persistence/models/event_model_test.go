//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/stretchr/testify/assert"
)

func TestEventModel_ToDomain(t *testing.T) {
	startsAt := time.Now().Add(24 * time.Hour)
	eventModel := &EventModel{
		ID:          "test-id",
		Name:        "Launch Party",
		Description: "Product launch",
		Location:    "Nairobi",
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(4 * time.Hour),
		ImageURL:    "https://cdn.example.com/launch.png",
		OrganizerID: "organizer-id",
	}

	event := eventModel.ToDomain()

	assert.Equal(t, eventModel.ID, event.ID)
	assert.Equal(t, eventModel.Name, event.Name)
	assert.Equal(t, eventModel.Description, event.Description)
	assert.Equal(t, eventModel.Location, event.Location)
	assert.Equal(t, eventModel.StartsAt, event.StartsAt)
	assert.Equal(t, eventModel.EndsAt, event.EndsAt)
	assert.Equal(t, eventModel.ImageURL, event.ImageURL)
	assert.Equal(t, eventModel.OrganizerID, event.OrganizerID)
}

func TestEventModel_FromDomain(t *testing.T) {
	startsAt := time.Now().Add(24 * time.Hour)
	event := &events.Event{
		ID:          "test-id",
		Name:        "Launch Party",
		Description: "Product launch",
		Location:    "Nairobi",
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(4 * time.Hour),
		ImageURL:    "https://cdn.example.com/launch.png",
		OrganizerID: "organizer-id",
	}

	eventModel := &EventModel{}
	eventModel.FromDomain(event)

	assert.Equal(t, event.ID, eventModel.ID)
	assert.Equal(t, event.Name, eventModel.Name)
	assert.Equal(t, event.Description, eventModel.Description)
	assert.Equal(t, event.Location, eventModel.Location)
	assert.Equal(t, event.StartsAt, eventModel.StartsAt)
	assert.Equal(t, event.EndsAt, eventModel.EndsAt)
	assert.Equal(t, event.ImageURL, eventModel.ImageURL)
	assert.Equal(t, event.OrganizerID, eventModel.OrganizerID)
}
