package accommodation_fx

import (
	"boystrip/internal/repositories"
	"boystrip/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAccommodationRepo, provideAccommodationService)

func provideAccommodationRepo(db *gorm.DB) repositories.AccommodationRepository {
	return repositories.NewAccommodationRepository(db)
}

func provideAccommodationService(
	accommodationRepo repositories.AccommodationRepository,
	profileRepo repositories.ProfileRepository,
	notifier services.ChangeNotifier,
) services.AccommodationServiceInterface {
	return services.NewAccommodationService(accommodationRepo, profileRepo, notifier)
}
