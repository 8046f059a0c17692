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

type PlaceServiceInterface interface {
	CreatePlace(ctx context.Context, ownerID uuid.UUID, request request_models.PlaceRequest) (*response_models.PlaceResponse, error)
	ListPlaces(ctx context.Context, ownerID uuid.UUID) ([]response_models.PlaceResponse, error)
	GetPlace(ctx context.Context, ownerID, placeID uuid.UUID) (*response_models.PlaceResponse, error)
	UpdatePlace(ctx context.Context, ownerID, placeID uuid.UUID, request request_models.UpdatePlaceRequest) (*response_models.PlaceResponse, error)
	DeletePlace(ctx context.Context, ownerID, placeID uuid.UUID) error
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	log       *zap.Logger
}

func NewPlaceService(placeRepo repositories.PlaceRepository, log *zap.Logger) PlaceServiceInterface {
	return &PlaceService{placeRepo: placeRepo, log: log.Named("place")}
}

func (s *PlaceService) CreatePlace(ctx context.Context, ownerID uuid.UUID, request request_models.PlaceRequest) (*response_models.PlaceResponse, error) {
	place := &dbm.Place{
		OwnerID:     ownerID,
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
	}
	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, storeError(s.log, "create place", err)
	}
	out := dbm.BuildPlaceResponse(place)
	return &out, nil
}

func (s *PlaceService) ListPlaces(ctx context.Context, ownerID uuid.UUID) ([]response_models.PlaceResponse, error) {
	places, err := s.placeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeError(s.log, "list places", err)
	}
	out := make([]response_models.PlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, dbm.BuildPlaceResponse(&places[i]))
	}
	return out, nil
}

func (s *PlaceService) find(ctx context.Context, ownerID, placeID uuid.UUID) (*dbm.Place, error) {
	place, err := s.placeRepo.FindOwned(ctx, placeID, ownerID)
	if err != nil {
		return nil, storeError(s.log, "find place", err)
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func (s *PlaceService) GetPlace(ctx context.Context, ownerID, placeID uuid.UUID) (*response_models.PlaceResponse, error) {
	place, err := s.find(ctx, ownerID, placeID)
	if err != nil {
		return nil, err
	}
	out := dbm.BuildPlaceResponse(place)
	return &out, nil
}

func (s *PlaceService) UpdatePlace(ctx context.Context, ownerID, placeID uuid.UUID, request request_models.UpdatePlaceRequest) (*response_models.PlaceResponse, error) {
	place, err := s.find(ctx, ownerID, placeID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		place.Name = *request.Name
	}
	if request.Description != nil {
		place.Description = request.Description
	}
	if request.Address != nil {
		place.Address = request.Address
	}
	if request.Latitude != nil {
		place.Latitude = request.Latitude
	}
	if request.Longitude != nil {
		place.Longitude = request.Longitude
	}

	if err := s.placeRepo.Save(ctx, place); err != nil {
		return nil, storeError(s.log, "update place", err)
	}
	out := dbm.BuildPlaceResponse(place)
	return &out, nil
}

func (s *PlaceService) DeletePlace(ctx context.Context, ownerID, placeID uuid.UUID) error {
	deleted, err := s.placeRepo.DeleteOwned(ctx, placeID, ownerID)
	if err != nil {
		return storeError(s.log, "delete place", err)
	}
	if !deleted {
		return utils.ErrPlaceNotFound
	}
	return nil
}
