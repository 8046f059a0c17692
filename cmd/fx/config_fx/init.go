package config_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(config.Load, provideTokenIssuer)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
}
