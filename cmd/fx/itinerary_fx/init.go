package itinerary_fx

import (
	"boystrip/internal/config"
	"boystrip/internal/repositories"
	"boystrip/internal/services"
	"boystrip/pkg/utils"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideTripSettings,
	provideActivityRepo, provideVoteRepo, provideCommentRepo,
	provideItineraryService)

func provideTripSettings(cfg *config.Config) (services.TripSettings, error) {
	start, end, err := cfg.Trip.Dates()
	if err != nil {
		return services.TripSettings{}, err
	}
	return services.TripSettings{
		Calendar:      utils.NewTripCalendar(start, end, cfg.Trip.Location()),
		Destination:   cfg.Trip.Destination,
		FeaturedTitle: cfg.Trip.FeaturedEventTitle,
	}, nil
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideVoteRepo(db *gorm.DB) repositories.VoteRepository {
	return repositories.NewVoteRepository(db)
}

func provideCommentRepo(db *gorm.DB) repositories.CommentRepository {
	return repositories.NewCommentRepository(db)
}

func provideItineraryService(
	activityRepo repositories.ActivityRepository,
	voteRepo repositories.VoteRepository,
	commentRepo repositories.CommentRepository,
	profileRepo repositories.ProfileRepository,
	trip services.TripSettings,
	notifier services.ChangeNotifier,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(activityRepo, voteRepo, commentRepo, profileRepo, trip, notifier)
}
