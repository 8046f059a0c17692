package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

func TestPlanTripUpdate(t *testing.T) {
	base := func() *dbm.Trip {
		return &dbm.Trip{Title: "T", StartDate: day(2025, 3, 1), EndDate: day(2025, 3, 3)}
	}

	tests := []struct {
		name    string
		trip    *dbm.Trip
		req     request_models.UpdateTripRequest
		want    repositories.TripDaysChange
		wantErr error
	}{
		{"title only", base(), request_models.UpdateTripRequest{Title: ptr("New")}, repositories.DaysUnchanged, nil},
		{"same dates", base(), request_models.UpdateTripRequest{StartDate: day(2025, 3, 1), EndDate: day(2025, 3, 3)}, repositories.DaysUnchanged, nil},
		{"end moved", base(), request_models.UpdateTripRequest{EndDate: day(2025, 3, 5)}, repositories.DaysRegenerate, nil},
		{"start moved", base(), request_models.UpdateTripRequest{StartDate: day(2025, 2, 27)}, repositories.DaysRegenerate, nil},
		{"inverted", base(), request_models.UpdateTripRequest{StartDate: day(2025, 3, 9)}, repositories.DaysUnchanged, utils.ErrInvalidDateRange},
		{"clear", base(), request_models.UpdateTripRequest{ClearDates: true}, repositories.DaysClear, nil},
		{"clear without dates", &dbm.Trip{}, request_models.UpdateTripRequest{ClearDates: true}, repositories.DaysUnchanged, nil},
		{"partial on undated", &dbm.Trip{}, request_models.UpdateTripRequest{StartDate: day(2025, 3, 1)}, repositories.DaysUnchanged, utils.ErrPartialDateRange},
		{"both on undated", &dbm.Trip{}, request_models.UpdateTripRequest{StartDate: day(2025, 3, 1), EndDate: day(2025, 3, 1)}, repositories.DaysRegenerate, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := planTripUpdate(tt.trip, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateTripValidation(t *testing.T) {
	e := newEnv(t)
	owner := e.register("owner@example.com")

	_, err := e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{Title: "x", StartDate: day(2025, 1, 2)})
	assert.ErrorIs(t, err, utils.ErrPartialDateRange)

	_, err = e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{Title: "x", StartDate: day(2025, 1, 2), EndDate: day(2025, 1, 1)})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	_, err = e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{Title: "x", StartTimeZone: ptr("Mars/Olympus")})
	assert.ErrorIs(t, err, utils.ErrInvalidTimeZone)

	_, err = e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{Title: "x", GroupID: ptr(uuid.NewString())})
	assert.ErrorIs(t, err, utils.ErrGroupNotFound)

	trip, err := e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{
		Title:         "Japan",
		StartDate:     day(2025, 4, 1),
		EndDate:       day(2025, 4, 7),
		StartTimeZone: ptr("Asia/Tokyo"),
	})
	require.NoError(t, err)
	days, err := e.itinerary.ListDays(ctx, owner, uuid.MustParse(trip.ID))
	require.NoError(t, err)
	assert.Len(t, days, 7)
}

func TestUpdateTripDayTriggers(t *testing.T) {
	e := newEnv(t)
	owner := e.register("owner@example.com")
	created, err := e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{
		Title: "Alps", StartDate: day(2025, 7, 1), EndDate: day(2025, 7, 3),
	})
	require.NoError(t, err)
	tripID := uuid.MustParse(created.ID)

	listIDs := func() []string {
		days, err := e.itinerary.ListDays(ctx, owner, tripID)
		require.NoError(t, err)
		ids := make([]string, 0, len(days))
		for _, d := range days {
			ids = append(ids, d.ID)
		}
		return ids
	}
	original := listIDs()
	require.Len(t, original, 3)

	_, err = e.trips.UpdateTrip(ctx, owner, tripID, request_models.UpdateTripRequest{Title: ptr("Dolomites")})
	require.NoError(t, err)
	assert.Equal(t, original, listIDs(), "title change keeps days")

	updated, err := e.trips.UpdateTrip(ctx, owner, tripID, request_models.UpdateTripRequest{EndDate: day(2025, 7, 5)})
	require.NoError(t, err)
	assert.Equal(t, "Dolomites", updated.Title)
	rebuilt := listIDs()
	assert.Len(t, rebuilt, 5)
	assert.NotContains(t, rebuilt, original[0])

	_, err = e.trips.UpdateTrip(ctx, owner, tripID, request_models.UpdateTripRequest{ClearDates: true, EndDate: day(2025, 7, 6)})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	cleared, err := e.trips.UpdateTrip(ctx, owner, tripID, request_models.UpdateTripRequest{ClearDates: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.StartDate)
	assert.Nil(t, cleared.EndDate)
	assert.Empty(t, listIDs())

	_, err = e.itinerary.RegenerateDays(ctx, owner, tripID)
	assert.ErrorIs(t, err, utils.ErrTripHasNoDates)
}

func TestSharedTripAccess(t *testing.T) {
	e := newEnv(t)
	owner := e.register("owner@example.com")
	member := e.register("member@example.com")
	stranger := e.register("stranger@example.com")

	group, err := e.groups.CreateGroup(ctx, owner, request_models.CreateGroupRequest{Name: "Pals"})
	require.NoError(t, err)
	_, err = e.groups.AddMember(ctx, owner, uuid.MustParse(group.ID), request_models.AddGroupMemberRequest{Email: "member@example.com"})
	require.NoError(t, err)

	_, err = e.trips.CreateTrip(ctx, stranger, request_models.CreateTripRequest{Title: "x", GroupID: &group.ID})
	assert.ErrorIs(t, err, utils.ErrGroupNotFound)

	trip, err := e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{Title: "Shared", GroupID: &group.ID})
	require.NoError(t, err)
	tripID := uuid.MustParse(trip.ID)

	got, err := e.trips.GetTrip(ctx, member, tripID)
	require.NoError(t, err)
	assert.Equal(t, &group.ID, got.GroupID)

	_, err = e.trips.UpdateTrip(ctx, member, tripID, request_models.UpdateTripRequest{Title: ptr("mine")})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	assert.ErrorIs(t, e.trips.DeleteTrip(ctx, member, tripID), utils.ErrTripNotFound)

	_, err = e.trips.GetTrip(ctx, stranger, tripID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = e.trips.UpdateTrip(ctx, owner, tripID, request_models.UpdateTripRequest{ClearGroup: true, GroupID: &group.ID})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	unshared, err := e.trips.UpdateTrip(ctx, owner, tripID, request_models.UpdateTripRequest{ClearGroup: true})
	require.NoError(t, err)
	assert.Nil(t, unshared.GroupID)
	_, err = e.trips.GetTrip(ctx, member, tripID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = e.trips.UpdateTrip(ctx, owner, tripID, request_models.UpdateTripRequest{GroupID: &group.ID})
	require.NoError(t, err)
	_, err = e.trips.GetTrip(ctx, member, tripID)
	require.NoError(t, err)

	require.NoError(t, e.trips.DeleteTrip(ctx, owner, tripID))
	list, err := e.trips.ListTrips(ctx, member)
	require.NoError(t, err)
	assert.Empty(t, list)
}
