package group_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(repositories.NewGroupRepository, services.NewGroupService)
