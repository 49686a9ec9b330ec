package auth_fx

import (
	"boystrip/internal/config"
	"boystrip/internal/services"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideTokenIssuer, provideAuthService)

func provideTokenIssuer(cfg *config.Config, log *logger.Logger) *utils.TokenIssuer {
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		// tokens will not survive a restart
		log.Warn().Msg("JWT_SECRET not set, using a random secret")
		secret = uuid.NewString() + uuid.NewString()
	}
	return utils.NewTokenIssuer(secret, cfg.Auth.JWTTTL)
}

func provideAuthService(issuer *utils.TokenIssuer, cfg *config.Config) services.AuthServiceInterface {
	return services.NewAuthService(issuer, services.GatePasswords{
		Trip:  cfg.Auth.TripPassword,
		Admin: cfg.Auth.AdminPassword,
	})
}
