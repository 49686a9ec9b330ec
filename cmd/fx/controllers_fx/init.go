package controllers_fx

import (
	"boystrip/internal/api/controllers"
	"boystrip/internal/config"
	"boystrip/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(provideLiveController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewAccommodationController),
	fx.Provide(controllers.NewPhotoController),
	fx.Provide(controllers.NewAIController))

func provideLiveController(hub *services.LiveHub, cfg *config.Config) *controllers.LiveController {
	return controllers.NewLiveController(hub, cfg.CORSOrigins)
}
