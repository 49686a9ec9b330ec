package dashboard

import (
	"boystrip/internal/repositories"
	"boystrip/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideDashboardService,
)

func provideDashboardService(
	profileRepo repositories.ProfileRepository,
	activityRepo repositories.ActivityRepository,
	payments services.AIPaymentServiceInterface,
	accommodation services.AccommodationServiceInterface,
	trip services.TripSettings,
) services.DashboardServiceInterface {
	return services.NewDashboardService(profileRepo, activityRepo, payments, accommodation, trip)
}
