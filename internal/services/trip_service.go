package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, actorID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, actorID uuid.UUID) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, actorID, tripID uuid.UUID) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, actorID, tripID uuid.UUID, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, actorID, tripID uuid.UUID) error
}

type TripService struct {
	tripRepo  repositories.TripRepository
	groupRepo repositories.GroupRepository
	log       *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, groupRepo repositories.GroupRepository, log *zap.Logger) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
		log:       log.Named("trip"),
	}
}

func (s *TripService) CreateTrip(ctx context.Context, actorID uuid.UUID, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	start, end, err := normalizeRange(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validateTimeZones(request.StartTimeZone, request.EndTimeZone); err != nil {
		return nil, err
	}
	groupID, err := s.resolveGroup(ctx, actorID, request.GroupID)
	if err != nil {
		return nil, err
	}

	trip := &dbm.Trip{
		OwnerID:       actorID,
		GroupID:       groupID,
		Title:         request.Title,
		Description:   request.Description,
		StartDate:     start,
		EndDate:       end,
		StartTimeZone: request.StartTimeZone,
		EndTimeZone:   request.EndTimeZone,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, storeError(s.log, "create trip", err)
	}

	s.log.Info("trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.Bool("with_days", trip.HasDateRange()))
	out := dbm.BuildTripResponse(trip)
	return &out, nil
}

func (s *TripService) ListTrips(ctx context.Context, actorID uuid.UUID) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListVisible(ctx, actorID)
	if err != nil {
		return nil, storeError(s.log, "list trips", err)
	}
	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, dbm.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, actorID, tripID uuid.UUID) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.FindVisible(ctx, repositories.TripScope{TripID: tripID, ActorID: actorID})
	if err != nil {
		return nil, storeError(s.log, "get trip", err)
	}
	out := dbm.BuildTripResponse(trip)
	return &out, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, actorID, tripID uuid.UUID, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	if request.ClearDates && (request.StartDate != nil || request.EndDate != nil) {
		return nil, utils.ErrInvalidInput
	}
	if request.ClearGroup && request.GroupID != nil {
		return nil, utils.ErrInvalidInput
	}
	if err := validateTimeZones(request.StartTimeZone, request.EndTimeZone); err != nil {
		return nil, err
	}
	groupID, err := s.resolveGroup(ctx, actorID, request.GroupID)
	if err != nil {
		return nil, err
	}

	var change repositories.TripDaysChange
	trip, err := s.tripRepo.Update(ctx, repositories.TripScope{TripID: tripID, ActorID: actorID},
		func(trip *dbm.Trip) (repositories.TripDaysChange, error) {
			switch {
			case request.ClearGroup:
				trip.GroupID = nil
			case groupID != nil:
				trip.GroupID = groupID
			}
			planned, planErr := planTripUpdate(trip, request)
			change = planned
			return planned, planErr
		})
	if err != nil {
		return nil, storeError(s.log, "update trip", err)
	}

	if change != repositories.DaysUnchanged {
		s.log.Info("trip days rebuilt",
			zap.String("trip_id", trip.ID.String()),
			zap.Bool("cleared", change == repositories.DaysClear))
	}
	out := dbm.BuildTripResponse(trip)
	return &out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, actorID, tripID uuid.UUID) error {
	err := s.tripRepo.Delete(ctx, repositories.TripScope{TripID: tripID, ActorID: actorID})
	return storeError(s.log, "delete trip", err)
}

// resolveGroup checks the actor belongs to the group a trip is shared with.
func (s *TripService) resolveGroup(ctx context.Context, actorID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	groupID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	member, err := s.groupRepo.IsMember(ctx, groupID, actorID)
	if err != nil {
		return nil, storeError(s.log, "check group membership", err)
	}
	if !member {
		return nil, utils.ErrGroupNotFound
	}
	return &groupID, nil
}

// planTripUpdate applies a partial update and decides what happens to the days: they are
// rebuilt when a bound moved and both are set afterwards, and dropped on clear_dates.
func planTripUpdate(trip *dbm.Trip, request request_models.UpdateTripRequest) (repositories.TripDaysChange, error) {
	if request.Title != nil {
		trip.Title = *request.Title
	}
	if request.Description != nil {
		trip.Description = request.Description
	}
	if request.StartTimeZone != nil {
		trip.StartTimeZone = request.StartTimeZone
	}
	if request.EndTimeZone != nil {
		trip.EndTimeZone = request.EndTimeZone
	}

	if request.ClearDates {
		hadDates := trip.StartDate != nil || trip.EndDate != nil
		trip.StartDate, trip.EndDate = nil, nil
		if hadDates {
			return repositories.DaysClear, nil
		}
		return repositories.DaysUnchanged, nil
	}

	start, end := trip.StartDate, trip.EndDate
	if request.StartDate != nil {
		d := utils.TruncateToDateUTC(*request.StartDate)
		start = &d
	}
	if request.EndDate != nil {
		d := utils.TruncateToDateUTC(*request.EndDate)
		end = &d
	}
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return repositories.DaysUnchanged, err
	}

	moved := !sameDate(trip.StartDate, start) || !sameDate(trip.EndDate, end)
	trip.StartDate, trip.EndDate = start, end
	if moved && trip.HasDateRange() {
		return repositories.DaysRegenerate, nil
	}
	return repositories.DaysUnchanged, nil
}

// normalizeRange truncates both bounds to UTC dates and enforces both-or-neither and start <= end.
func normalizeRange(start, end *time.Time) (*time.Time, *time.Time, error) {
	if start == nil && end == nil {
		return nil, nil, nil
	}
	if start == nil || end == nil {
		return nil, nil, utils.ErrPartialDateRange
	}
	s, e := utils.TruncateToDateUTC(*start), utils.TruncateToDateUTC(*end)
	if e.Before(s) {
		return nil, nil, utils.ErrInvalidDateRange
	}
	return &s, &e, nil
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return utils.TruncateToDateUTC(*a).Equal(utils.TruncateToDateUTC(*b))
}

func validateTimeZones(zones ...*string) error {
	for _, tz := range zones {
		if tz != nil && !utils.ValidTimeZone(*tz) {
			return utils.ErrInvalidTimeZone
		}
	}
	return nil
}
