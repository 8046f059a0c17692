package catalog_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	repositories.NewPlaceRepository,
	repositories.NewCityRepository,
	repositories.NewActivityRepository,
	services.NewPlaceService,
	services.NewCityService,
	services.NewActivityService,
)
