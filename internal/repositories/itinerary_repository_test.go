package repositories_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

func assertContiguous(t *testing.T, days []dbm.TripDay, first string, n int) {
	t.Helper()
	require.Len(t, days, n)
	start := days[0].Date
	assert.Equal(t, first, utils.FormatDate(start))
	for i, d := range days {
		assert.Equal(t, i, d.Position, "position of day %d", i)
		assert.Equal(t, utils.FormatDate(start.AddDate(0, 0, i)), utils.FormatDate(d.Date), "date of day %d", i)
	}
}

func TestCreateTripGeneratesOneDayPerDate(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 3, 1), date(2025, 3, 5))

	days := f.days(repositories.TripScope{TripID: trip.ID, ActorID: owner})
	assertContiguous(t, days, "2025-03-01", 5)
}

func TestCreateTripWithoutDatesHasNoDays(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.trip(owner, nil, nil)

	days := f.days(repositories.TripScope{TripID: trip.ID, ActorID: owner})
	assert.Empty(t, days)
}

func TestRegenerateSingleDayTrip(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 6, 10), date(2025, 6, 10))

	days, err := f.itinerary.RegenerateDays(ctx, repositories.TripScope{TripID: trip.ID, ActorID: owner})
	require.NoError(t, err)
	assertContiguous(t, days, "2025-06-10", 1)
}

func TestRegenerateAcrossMonthAndLeapDay(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2024, 2, 27), date(2024, 3, 2))

	days := f.days(repositories.TripScope{TripID: trip.ID, ActorID: owner})
	assertContiguous(t, days, "2024-02-27", 5)
	assert.Equal(t, "2024-02-29", utils.FormatDate(days[2].Date))
}

func TestRegenerateMultiDecadeRange(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	// more days than fit in one INSERT under sqlite's bind parameter limit
	trip := f.datedTrip(owner, date(2000, 1, 1), date(2030, 1, 1))
	scope := repositories.TripScope{TripID: trip.ID, ActorID: owner}

	days, err := f.itinerary.RegenerateDays(ctx, scope)
	require.NoError(t, err)
	assertContiguous(t, days, "2000-01-01", 10959)
	assert.Equal(t, "2030-01-01", utils.FormatDate(days[len(days)-1].Date))

	stored := f.days(scope)
	require.Len(t, stored, 10959)
	assert.Equal(t, 10958, stored[len(stored)-1].Position)
}

func TestRegenerateIsDestructiveAndDeterministic(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 3, 1), date(2025, 3, 3))
	scope := repositories.TripScope{TripID: trip.ID, ActorID: owner}

	day := f.dayScope(owner, trip, 0)
	_, err := f.attachments[dbm.KindCity].Append(ctx, day, f.city("Lisbon"))
	require.NoError(t, err)
	_, err = f.itinerary.CreateDay(ctx, scope, date(2025, 3, 10), nil)
	require.NoError(t, err)
	before := f.days(scope)
	require.Len(t, before, 4)

	first, err := f.itinerary.RegenerateDays(ctx, scope)
	require.NoError(t, err)
	second, err := f.itinerary.RegenerateDays(ctx, scope)
	require.NoError(t, err)

	assertContiguous(t, first, "2025-03-01", 3)
	assertContiguous(t, second, "2025-03-01", 3)
	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID)
	}

	var cities int64
	require.NoError(t, f.db.Model(&dbm.TripDayCity{}).Count(&cities).Error)
	assert.Zero(t, cities)

	var allDays int64
	require.NoError(t, f.db.Model(&dbm.TripDay{}).Count(&allDays).Error)
	assert.EqualValues(t, 3, allDays)
}

func TestRegenerateRequiresDates(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.trip(owner, nil, nil)

	_, err := f.itinerary.RegenerateDays(ctx, repositories.TripScope{TripID: trip.ID, ActorID: owner})
	assert.ErrorIs(t, err, utils.ErrTripHasNoDates)
}

func TestRegenerateNotOwned(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 3, 1), date(2025, 3, 2))

	_, err := f.itinerary.RegenerateDays(ctx, repositories.TripScope{TripID: trip.ID, ActorID: f.account()})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = f.itinerary.RegenerateDays(ctx, repositories.TripScope{TripID: uuid.New(), ActorID: owner})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestReplaceDaysRejectsInvertedRange(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.trip(owner, nil, nil)

	_, err := repositories.ReplaceDays(f.db, trip.ID, date(2025, 3, 2), date(2025, 3, 1))
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestCreateDayAppends(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	scope := repositories.TripScope{TripID: f.trip(owner, nil, nil).ID, ActorID: owner}

	title := "Arrival"
	first, err := f.itinerary.CreateDay(ctx, scope, date(2025, 5, 1).Add(15*time.Hour), &title)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "2025-05-01", utils.FormatDate(first.Date))
	assert.Equal(t, &title, first.Title)

	second, err := f.itinerary.CreateDay(ctx, scope, date(2025, 5, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, first.ItineraryID, second.ItineraryID)
}

func TestUpdateDay(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 3, 1), date(2025, 3, 2))
	day := f.dayScope(owner, trip, 1)

	title := "Hike"
	updated, err := f.itinerary.UpdateDay(ctx, day, repositories.DayChanges{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Hike", *updated.Title)
	assert.Equal(t, 1, updated.Position)
	assert.Equal(t, "2025-03-02", utils.FormatDate(updated.Date))

	other := f.datedTrip(owner, date(2025, 4, 1), date(2025, 4, 1))
	wrong := repositories.DayScope{TripScope: repositories.TripScope{TripID: other.ID, ActorID: owner}, DayID: day.DayID}
	_, err = f.itinerary.UpdateDay(ctx, wrong, repositories.DayChanges{Title: &title})
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestUpdateDayClearsTitle(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 3, 1), date(2025, 3, 1))
	day := f.dayScope(owner, trip, 0)

	title := "Hike"
	_, err := f.itinerary.UpdateDay(ctx, day, repositories.DayChanges{Title: &title})
	require.NoError(t, err)

	moved := date(2025, 3, 4)
	cleared, err := f.itinerary.UpdateDay(ctx, day, repositories.DayChanges{Date: &moved, ClearTitle: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.Title)
	assert.Equal(t, "2025-03-04", utils.FormatDate(cleared.Date))

	stored := f.days(day.TripScope)
	require.Len(t, stored, 1)
	assert.Nil(t, stored[0].Title)
}

func TestReorderDays(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 3, 1), date(2025, 3, 3))
	scope := repositories.TripScope{TripID: trip.ID, ActorID: owner}
	days := f.days(scope)
	reversed := []uuid.UUID{days[2].ID, days[1].ID, days[0].ID}

	require.NoError(t, f.itinerary.ReorderDays(ctx, scope, reversed))
	// same order twice leaves the same state
	require.NoError(t, f.itinerary.ReorderDays(ctx, scope, reversed))

	after := f.days(scope)
	for i, d := range after {
		assert.Equal(t, reversed[i], d.ID)
		assert.Equal(t, i, d.Position)
	}
}

func TestReorderDaysRejectsMismatch(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	trip := f.datedTrip(owner, date(2025, 3, 1), date(2025, 3, 3))
	scope := repositories.TripScope{TripID: trip.ID, ActorID: owner}
	days := f.days(scope)

	cases := map[string][]uuid.UUID{
		"empty":     {},
		"missing":   {days[0].ID, days[1].ID},
		"duplicate": {days[0].ID, days[0].ID, days[1].ID},
		"foreign":   {days[0].ID, days[1].ID, uuid.New()},
		"extra":     {days[0].ID, days[1].ID, days[2].ID, uuid.New()},
	}
	for name, ids := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, f.itinerary.ReorderDays(ctx, scope, ids), utils.ErrInvalidOrder)
		})
	}

	// positions untouched
	for i, d := range f.days(scope) {
		assert.Equal(t, days[i].ID, d.ID)
		assert.Equal(t, i, d.Position)
	}
}

func TestReorderDaysWithoutItinerary(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	scope := repositories.TripScope{TripID: f.trip(owner, nil, nil).ID, ActorID: owner}

	assert.ErrorIs(t, f.itinerary.ReorderDays(ctx, scope, []uuid.UUID{uuid.New()}), utils.ErrInvalidOrder)
}

func TestListDaysVisibility(t *testing.T) {
	f := newFixture(t)
	owner := f.account()
	member := f.account()
	stranger := f.account()

	group := &dbm.Group{Name: "Friends", OwnerID: owner}
	require.NoError(t, f.groups.Create(ctx, group))
	require.NoError(t, f.groups.AddMember(ctx, &dbm.GroupMember{GroupID: group.ID, UserID: member, Role: dbm.GroupRoleMember}))

	start, end := date(2025, 3, 1), date(2025, 3, 2)
	trip := &dbm.Trip{OwnerID: owner, GroupID: &group.ID, Title: "Shared", StartDate: &start, EndDate: &end}
	require.NoError(t, f.trips.Create(ctx, trip))

	assert.Len(t, f.days(repositories.TripScope{TripID: trip.ID, ActorID: member}), 2)

	_, err := f.itinerary.ListDays(ctx, repositories.TripScope{TripID: trip.ID, ActorID: stranger})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	// members read but do not write
	_, err = f.itinerary.RegenerateDays(ctx, repositories.TripScope{TripID: trip.ID, ActorID: member})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
