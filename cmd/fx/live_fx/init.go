package live_fx

import (
	"context"

	"boystrip/internal/services"
	"boystrip/pkg/logger"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideLiveHub, provideNotifier)

func provideLiveHub(lc fx.Lifecycle, log *logger.Logger) *services.LiveHub {
	hub := services.NewLiveHub(log.With("component", "live"))
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}

func provideNotifier(hub *services.LiveHub) services.ChangeNotifier {
	return hub
}
