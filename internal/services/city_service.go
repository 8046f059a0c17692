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

type CityServiceInterface interface {
	CreateCity(ctx context.Context, request request_models.CityRequest) (*response_models.CityResponse, error)
	ListCities(ctx context.Context) ([]response_models.CityResponse, error)
	GetCity(ctx context.Context, cityID uuid.UUID) (*response_models.CityResponse, error)
	UpdateCity(ctx context.Context, cityID uuid.UUID, request request_models.UpdateCityRequest) (*response_models.CityResponse, error)
	DeleteCity(ctx context.Context, cityID uuid.UUID) error
}

// CityService manages the shared city catalog. (name, country) is unique.
type CityService struct {
	cityRepo repositories.CityRepository
	log      *zap.Logger
}

func NewCityService(cityRepo repositories.CityRepository, log *zap.Logger) CityServiceInterface {
	return &CityService{cityRepo: cityRepo, log: log.Named("city")}
}

func (s *CityService) ensureUnique(ctx context.Context, name string, country *string, self uuid.UUID) error {
	existing, err := s.cityRepo.FindByName(ctx, name, country)
	if err != nil {
		return storeError(s.log, "find city by name", err)
	}
	if existing != nil && existing.ID != self {
		return utils.ErrCityAlreadyExists
	}
	return nil
}

func (s *CityService) CreateCity(ctx context.Context, request request_models.CityRequest) (*response_models.CityResponse, error) {
	if err := s.ensureUnique(ctx, request.Name, request.Country, uuid.Nil); err != nil {
		return nil, err
	}

	city := &dbm.City{
		Name:      request.Name,
		Country:   request.Country,
		Region:    request.Region,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	}
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, storeError(s.log, "create city", conflictOr(err, utils.ErrCityAlreadyExists))
	}
	out := dbm.BuildCityResponse(city)
	return &out, nil
}

func (s *CityService) ListCities(ctx context.Context) ([]response_models.CityResponse, error) {
	cities, err := s.cityRepo.List(ctx)
	if err != nil {
		return nil, storeError(s.log, "list cities", err)
	}
	out := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, dbm.BuildCityResponse(&cities[i]))
	}
	return out, nil
}

func (s *CityService) find(ctx context.Context, cityID uuid.UUID) (*dbm.City, error) {
	city, err := s.cityRepo.FindById(ctx, cityID)
	if err != nil {
		return nil, storeError(s.log, "find city", err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	return city, nil
}

func (s *CityService) GetCity(ctx context.Context, cityID uuid.UUID) (*response_models.CityResponse, error) {
	city, err := s.find(ctx, cityID)
	if err != nil {
		return nil, err
	}
	out := dbm.BuildCityResponse(city)
	return &out, nil
}

func (s *CityService) UpdateCity(ctx context.Context, cityID uuid.UUID, request request_models.UpdateCityRequest) (*response_models.CityResponse, error) {
	city, err := s.find(ctx, cityID)
	if err != nil {
		return nil, err
	}

	renamed := false
	if request.Name != nil && *request.Name != city.Name {
		city.Name = *request.Name
		renamed = true
	}
	if request.Country != nil {
		renamed = renamed || city.Country == nil || *city.Country != *request.Country
		city.Country = request.Country
	}
	if request.Region != nil {
		city.Region = request.Region
	}
	if request.Latitude != nil {
		city.Latitude = request.Latitude
	}
	if request.Longitude != nil {
		city.Longitude = request.Longitude
	}

	if renamed {
		if err := s.ensureUnique(ctx, city.Name, city.Country, city.ID); err != nil {
			return nil, err
		}
	}

	if err := s.cityRepo.Save(ctx, city); err != nil {
		return nil, storeError(s.log, "update city", conflictOr(err, utils.ErrCityAlreadyExists))
	}
	out := dbm.BuildCityResponse(city)
	return &out, nil
}

func (s *CityService) DeleteCity(ctx context.Context, cityID uuid.UUID) error {
	deleted, err := s.cityRepo.Delete(ctx, cityID)
	if err != nil {
		return storeError(s.log, "delete city", err)
	}
	if !deleted {
		return utils.ErrCityNotFound
	}
	return nil
}
