package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tripplanner/cmd/fx/account_fx"
	"tripplanner/cmd/fx/catalog_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/group_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/logger_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/metrics_fx"
	"tripplanner/cmd/fx/trip_fx"
	"tripplanner/internal/api"
	"tripplanner/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		metrics_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		group_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		catalog_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(cfg *config.Config, h api.Handlers) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return api.NewRouter(h)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
