package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"boystrip/cmd/fx/accommodation_fx"
	"boystrip/cmd/fx/ai_fx"
	"boystrip/cmd/fx/auth_fx"
	"boystrip/cmd/fx/config_fx"
	"boystrip/cmd/fx/controllers_fx"
	"boystrip/cmd/fx/dashboard"
	"boystrip/cmd/fx/db_fx"
	"boystrip/cmd/fx/itinerary_fx"
	"boystrip/cmd/fx/live_fx"
	"boystrip/cmd/fx/memcache_fx"
	"boystrip/cmd/fx/profile_fx"
	"boystrip/cmd/fx/storage_fx"
	"boystrip/internal/api"
	"boystrip/internal/config"
	"boystrip/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		live_fx.Module,
		storage_fx.Module,
		profile_fx.Module,
		itinerary_fx.Module,
		accommodation_fx.Module,
		ai_fx.Module,
		auth_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
