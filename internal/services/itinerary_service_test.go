package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

func TestAttachmentFlowThroughService(t *testing.T) {
	e := newEnv(t)
	owner := e.register("owner@example.com")
	trip, err := e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{
		Title: "Iberia", StartDate: day(2025, 9, 1), EndDate: day(2025, 9, 3),
	})
	require.NoError(t, err)
	tripID := uuid.MustParse(trip.ID)

	days, err := e.itinerary.ListDays(ctx, owner, tripID)
	require.NoError(t, err)
	require.Len(t, days, 3)
	scope := repositories.DayScope{
		TripScope: repositories.TripScope{TripID: tripID, ActorID: owner},
		DayID:     uuid.MustParse(days[0].ID),
	}

	madrid, err := e.cities.CreateCity(ctx, request_models.CityRequest{Name: "Madrid", Country: ptr("ES")})
	require.NoError(t, err)
	seville, err := e.cities.CreateCity(ctx, request_models.CityRequest{Name: "Seville", Country: ptr("ES")})
	require.NoError(t, err)

	x, err := e.itinerary.AddAttachment(ctx, dbm.KindCity, scope, request_models.AddAttachmentRequest{TargetID: madrid.ID})
	require.NoError(t, err)
	y, err := e.itinerary.AddAttachment(ctx, dbm.KindCity, scope, request_models.AddAttachmentRequest{TargetID: seville.ID, Position: ptr(0)})
	require.NoError(t, err)

	rows, err := e.itinerary.ListAttachments(ctx, dbm.KindCity, scope)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Seville", rows[0].City.Name)
	assert.Equal(t, 1, rows[1].Position)

	require.NoError(t, e.itinerary.ReorderAttachments(ctx, dbm.KindCity, scope,
		[]uuid.UUID{uuid.MustParse(x.ID), uuid.MustParse(y.ID)}))
	rows, err = e.itinerary.ListAttachments(ctx, dbm.KindCity, scope)
	require.NoError(t, err)
	assert.Equal(t, "Madrid", rows[0].City.Name)

	require.NoError(t, e.itinerary.RemoveAttachment(ctx, dbm.KindCity, scope, uuid.MustParse(x.ID)))
	assert.ErrorIs(t, e.itinerary.RemoveAttachment(ctx, dbm.KindCity, scope, uuid.MustParse(x.ID)), utils.ErrAttachmentNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Mutations().WithLabelValues("append", "cities", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Mutations().WithLabelValues("insert", "cities", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Mutations().WithLabelValues("remove", "cities", "error")))
}

func TestItineraryServiceRejectsUnknownKind(t *testing.T) {
	e := newEnv(t)
	_, err := e.itinerary.ListAttachments(ctx, dbm.AttachmentKind("hotels"), repositories.DayScope{})
	assert.ErrorIs(t, err, utils.ErrInvalidKind)
	assert.ErrorIs(t, e.itinerary.ReorderAttachments(ctx, "hotels", repositories.DayScope{}, nil), utils.ErrInvalidKind)
}

func TestDaysThroughService(t *testing.T) {
	e := newEnv(t)
	owner := e.register("owner@example.com")
	trip, err := e.trips.CreateTrip(ctx, owner, request_models.CreateTripRequest{Title: "Open ended"})
	require.NoError(t, err)
	tripID := uuid.MustParse(trip.ID)

	first, err := e.itinerary.CreateDay(ctx, owner, tripID, request_models.CreateTripDayRequest{Date: *day(2025, 1, 1)})
	require.NoError(t, err)
	second, err := e.itinerary.CreateDay(ctx, owner, tripID, request_models.CreateTripDayRequest{Date: *day(2025, 1, 2), Title: ptr("Second")})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	require.NoError(t, e.itinerary.ReorderDays(ctx, owner, tripID, []uuid.UUID{uuid.MustParse(second.ID), uuid.MustParse(first.ID)}))
	days, err := e.itinerary.ListDays(ctx, owner, tripID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, days[0].ID)

	updated, err := e.itinerary.UpdateDay(ctx, repositories.DayScope{
		TripScope: repositories.TripScope{TripID: tripID, ActorID: owner},
		DayID:     uuid.MustParse(first.ID),
	}, request_models.UpdateTripDayRequest{Title: ptr("First")})
	require.NoError(t, err)
	assert.Equal(t, "First", *updated.Title)

	firstScope := repositories.DayScope{
		TripScope: repositories.TripScope{TripID: tripID, ActorID: owner},
		DayID:     uuid.MustParse(first.ID),
	}
	_, err = e.itinerary.UpdateDay(ctx, firstScope, request_models.UpdateTripDayRequest{Title: ptr("Both"), ClearTitle: true})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	untitled, err := e.itinerary.UpdateDay(ctx, firstScope, request_models.UpdateTripDayRequest{ClearTitle: true})
	require.NoError(t, err)
	assert.Nil(t, untitled.Title)

	err = e.itinerary.ReorderDays(ctx, owner, tripID, []uuid.UUID{uuid.MustParse(first.ID)})
	assert.ErrorIs(t, err, utils.ErrInvalidOrder)
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.Mutations().WithLabelValues("reorder", "days", "error")))
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, storeError(zap.NewNop(), "op", nil))
	assert.Equal(t, utils.ErrDayNotFound, storeError(zap.NewNop(), "op", utils.ErrDayNotFound))

	err := storeError(zap.NewNop(), "op", errors.New("disk full"))
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Contains(t, err.Error(), "disk full")
}
