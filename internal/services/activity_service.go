package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, ownerID uuid.UUID, request request_models.ActivityRequest) (*response_models.ActivityResponse, error)
	ListActivities(ctx context.Context, ownerID uuid.UUID) ([]response_models.ActivityResponse, error)
	GetActivity(ctx context.Context, ownerID, activityID uuid.UUID) (*response_models.ActivityResponse, error)
	UpdateActivity(ctx context.Context, ownerID, activityID uuid.UUID, request request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, ownerID, activityID uuid.UUID) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	placeRepo    repositories.PlaceRepository
	log          *zap.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepository, placeRepo repositories.PlaceRepository, log *zap.Logger) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		placeRepo:    placeRepo,
		log:          log.Named("activity"),
	}
}

// validateSchedule requires both times or neither, end not before start, and a
// valid time zone for each time that is set.
func validateSchedule(a *dbm.Activity) error {
	if (a.StartTime == nil) != (a.EndTime == nil) {
		return utils.ErrPartialDateRange
	}
	if a.StartTime != nil && a.EndTime.Before(*a.StartTime) {
		return utils.ErrInvalidDateRange
	}
	if a.StartTime != nil && (a.StartTimeZone == nil || !utils.ValidTimeZone(*a.StartTimeZone)) {
		return utils.ErrInvalidTimeZone
	}
	if a.EndTime != nil && (a.EndTimeZone == nil || !utils.ValidTimeZone(*a.EndTimeZone)) {
		return utils.ErrInvalidTimeZone
	}
	return validateTimeZones(a.StartTimeZone, a.EndTimeZone)
}

func (s *ActivityService) ownedPlace(ctx context.Context, ownerID uuid.UUID, raw *string) (*dbm.Place, error) {
	placeID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	place, err := s.placeRepo.FindOwned(ctx, placeID, ownerID)
	if err != nil {
		return nil, storeError(s.log, "find place", err)
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, ownerID uuid.UUID, request request_models.ActivityRequest) (*response_models.ActivityResponse, error) {
	activity := &dbm.Activity{
		OwnerID:       ownerID,
		Title:         request.Title,
		Description:   request.Description,
		Notes:         request.Notes,
		StartTime:     request.StartTime,
		EndTime:       request.EndTime,
		StartTimeZone: request.StartTimeZone,
		EndTimeZone:   request.EndTimeZone,
	}
	if err := validateSchedule(activity); err != nil {
		return nil, err
	}
	if request.PlaceID != nil {
		place, err := s.ownedPlace(ctx, ownerID, request.PlaceID)
		if err != nil {
			return nil, err
		}
		activity.PlaceID = &place.ID
		activity.Place = place
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, storeError(s.log, "create activity", err)
	}
	out := dbm.BuildActivityResponse(activity)
	return &out, nil
}

func (s *ActivityService) ListActivities(ctx context.Context, ownerID uuid.UUID) ([]response_models.ActivityResponse, error) {
	activities, err := s.activityRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeError(s.log, "list activities", err)
	}
	out := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, dbm.BuildActivityResponse(&activities[i]))
	}
	return out, nil
}

func (s *ActivityService) find(ctx context.Context, ownerID, activityID uuid.UUID) (*dbm.Activity, error) {
	activity, err := s.activityRepo.FindOwned(ctx, activityID, ownerID)
	if err != nil {
		return nil, storeError(s.log, "find activity", err)
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, ownerID, activityID uuid.UUID) (*response_models.ActivityResponse, error) {
	activity, err := s.find(ctx, ownerID, activityID)
	if err != nil {
		return nil, err
	}
	out := dbm.BuildActivityResponse(activity)
	return &out, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, ownerID, activityID uuid.UUID, request request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error) {
	activity, err := s.find(ctx, ownerID, activityID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		activity.Title = *request.Title
	}
	if request.Description != nil {
		activity.Description = request.Description
	}
	if request.Notes != nil {
		activity.Notes = request.Notes
	}
	if request.StartTime != nil {
		activity.StartTime = request.StartTime
	}
	if request.EndTime != nil {
		activity.EndTime = request.EndTime
	}
	if request.StartTimeZone != nil {
		activity.StartTimeZone = request.StartTimeZone
	}
	if request.EndTimeZone != nil {
		activity.EndTimeZone = request.EndTimeZone
	}
	if err := validateSchedule(activity); err != nil {
		return nil, err
	}
	if request.PlaceID != nil {
		place, err := s.ownedPlace(ctx, ownerID, request.PlaceID)
		if err != nil {
			return nil, err
		}
		activity.PlaceID = &place.ID
		activity.Place = place
	}

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, storeError(s.log, "update activity", err)
	}
	out := dbm.BuildActivityResponse(activity)
	return &out, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, ownerID, activityID uuid.UUID) error {
	deleted, err := s.activityRepo.DeleteOwned(ctx, activityID, ownerID)
	if err != nil {
		return storeError(s.log, "delete activity", err)
	}
	if !deleted {
		return utils.ErrActivityNotFound
	}
	return nil
}
