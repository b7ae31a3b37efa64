//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/events"
	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create_RejectsPastEvent(t *testing.T) {
	ctx := SetupServices(t)
	organizer := persistence.CreateTestUser(t, users.RoleOrganizer)
	require.NoError(t, ctx.Persistence.UserRepo.Create(context.Background(), organizer))

	event := persistence.CreateTestEvent(t, organizer.ID)
	event.StartsAt = time.Now().Add(-48 * time.Hour)
	event.EndsAt = time.Now().Add(-44 * time.Hour)

	_, err := ctx.EventService.Create(context.Background(), organizer.ID, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end time must be in the future")
}

func TestEventService_Update_OnlyOwnerAndFutureDates(t *testing.T) {
	ctx := SetupServices(t)
	organizer, event, _ := SeedEventWithTickets(t, ctx)

	newName := "Renamed Summit"
	updated, err := ctx.EventService.Update(context.Background(), organizer.ID, event.ID, events.EventUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Summit", updated.Name)

	// Non-owner is rejected
	_, err = ctx.EventService.Update(context.Background(), uuid.NewString(), event.ID, events.EventUpdate{Name: &newName})
	require.Error(t, err)

	// Moving the event into the past is rejected
	past := time.Now().Add(-time.Hour)
	_, err = ctx.EventService.Update(context.Background(), organizer.ID, event.ID, events.EventUpdate{EndsAt: &past})
	require.Error(t, err)
}

func TestEventService_Delete_CascadesTicketTypes(t *testing.T) {
	ctx := SetupServices(t)
	organizer, event, ticketType := SeedEventWithTickets(t, ctx)

	require.NoError(t, ctx.EventService.Delete(context.Background(), organizer.ID, event.ID))

	_, err := ctx.Persistence.EventRepo.GetByID(context.Background(), event.ID)
	assert.Error(t, err)
	_, err = ctx.Persistence.TicketTypeRepo.GetByID(context.Background(), ticketType.ID)
	assert.Error(t, err)
}

func TestEventService_List_FiltersByOrganizer(t *testing.T) {
	ctx := SetupServices(t)
	organizer, event, _ := SeedEventWithTickets(t, ctx)

	other := persistence.CreateTestUser(t, users.RoleOrganizer)
	require.NoError(t, ctx.Persistence.UserRepo.Create(context.Background(), other))
	otherEvent := persistence.CreateTestEvent(t, other.ID)
	_, err := ctx.EventService.Create(context.Background(), other.ID, otherEvent)
	require.NoError(t, err)

	query := events.NewEventQuery()
	query.OrganizerID = organizer.ID
	listed, err := ctx.EventService.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, event.ID, listed[0].ID)
}
