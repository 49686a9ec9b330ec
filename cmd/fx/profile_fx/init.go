package profile_fx

import (
	"boystrip/internal/repositories"
	"boystrip/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository, photos services.PhotoServiceInterface, notifier services.ChangeNotifier) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, photos, notifier)
}
