package ai_fx

import (
	"context"
	"strings"

	"boystrip/internal/config"
	"boystrip/internal/repositories"
	"boystrip/internal/services"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideTextGenerator, provideAIService,
	providePaymentRepo, providePaymentService)

func provideTextGenerator(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (utils.TextGenerator, error) {
	apiKey, model := cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel
	if strings.EqualFold(cfg.AI.Provider, "gemini") {
		apiKey, model = cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel
	}
	if apiKey == "" {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("no AI api key configured, AI requests will fail")
	}

	generator, err := utils.NewTextGenerator(context.Background(), cfg.AI.Provider, apiKey, model)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return generator.Close()
		},
	})
	return generator, nil
}

func provideAIService(generator utils.TextGenerator, itinerary services.ItineraryServiceInterface, trip services.TripSettings) services.AIServiceInterface {
	return services.NewAIService(generator, itinerary, trip)
}

func providePaymentRepo(db *gorm.DB) repositories.AIPaymentRepository {
	return repositories.NewAIPaymentRepository(db)
}

func providePaymentService(paymentRepo repositories.AIPaymentRepository, notifier services.ChangeNotifier) services.AIPaymentServiceInterface {
	return services.NewAIPaymentService(paymentRepo, notifier)
}
