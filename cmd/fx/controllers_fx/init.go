package controllers_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewCityController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewGroupController),
	fx.Provide(controllers.NewHealthController))
