package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"tripplanner/internal/infra/infratest"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/repositories"
)

var ctx = context.Background()

type fixture struct {
	t  *testing.T
	db *gorm.DB

	trips       repositories.TripRepository
	itinerary   repositories.ItineraryRepository
	attachments repositories.AttachmentRepositories
	groups      repositories.GroupRepository
}

func newFixture(t *testing.T) *fixture {
	db := infratest.OpenTestDB(t)
	return &fixture{
		t:           t,
		db:          db,
		trips:       repositories.NewTripRepository(db),
		itinerary:   repositories.NewItineraryRepository(db),
		attachments: repositories.NewAttachmentRepositories(db),
		groups:      repositories.NewGroupRepository(db),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) account() uuid.UUID {
	a := dbm.Account{Email: uuid.NewString() + "@example.com", PasswordHash: "x"}
	require.NoError(f.t, f.db.Omit("Trips").Create(&a).Error)
	return a.ID
}

func (f *fixture) trip(owner uuid.UUID, start, end *time.Time) *dbm.Trip {
	trip := &dbm.Trip{OwnerID: owner, Title: "Trip", StartDate: start, EndDate: end}
	require.NoError(f.t, f.trips.Create(ctx, trip))
	return trip
}

func (f *fixture) datedTrip(owner uuid.UUID, start, end time.Time) *dbm.Trip {
	return f.trip(owner, &start, &end)
}

func (f *fixture) days(scope repositories.TripScope) []dbm.TripDay {
	days, err := f.itinerary.ListDays(ctx, scope)
	require.NoError(f.t, err)
	return days
}

func (f *fixture) city(name string) uuid.UUID {
	c := dbm.City{Name: name}
	require.NoError(f.t, f.db.Create(&c).Error)
	return c.ID
}

func (f *fixture) place(owner uuid.UUID, name string) uuid.UUID {
	p := dbm.Place{OwnerID: owner, Name: name}
	require.NoError(f.t, f.db.Create(&p).Error)
	return p.ID
}

func (f *fixture) activity(owner uuid.UUID, title string) uuid.UUID {
	a := dbm.Activity{OwnerID: owner, Title: title}
	require.NoError(f.t, f.db.Omit("Place").Create(&a).Error)
	return a.ID
}

// dayScope returns the scope of the n-th day of the trip.
func (f *fixture) dayScope(owner uuid.UUID, trip *dbm.Trip, n int) repositories.DayScope {
	scope := repositories.TripScope{TripID: trip.ID, ActorID: owner}
	days := f.days(scope)
	require.Greater(f.t, len(days), n)
	return repositories.DayScope{TripScope: scope, DayID: days[n].ID}
}

type positioned struct {
	target   uuid.UUID
	position int
}

func (f *fixture) listed(kind dbm.AttachmentKind, scope repositories.DayScope) []positioned {
	rows, err := f.attachments[kind].List(ctx, scope)
	require.NoError(f.t, err)
	out := make([]positioned, 0, len(rows))
	for _, r := range rows {
		out = append(out, positioned{target: r.TargetID(), position: r.SortPosition()})
	}
	return out
}
