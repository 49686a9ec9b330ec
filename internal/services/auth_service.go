package services

import (
	"context"
	"crypto/subtle"

	"boystrip/internal/models/response_models"
	"boystrip/pkg/logger"
	"boystrip/pkg/utils"
)

// GatePasswords are the shared secrets behind the trip gate.
type GatePasswords struct {
	Trip  string
	Admin string
}

type AuthServiceInterface interface {
	Unlock(ctx context.Context, password string) (*response_models.UnlockResponse, error)
	AdminUnlock(ctx context.Context, password string) (*response_models.UnlockResponse, error)
}

type AuthService struct {
	issuer    *utils.TokenIssuer
	passwords GatePasswords
}

func NewAuthService(issuer *utils.TokenIssuer, passwords GatePasswords) AuthServiceInterface {
	return &AuthService{issuer: issuer, passwords: passwords}
}

func (s *AuthService) Unlock(ctx context.Context, password string) (*response_models.UnlockResponse, error) {
	return s.unlock(ctx, s.passwords.Trip, password, utils.RoleGuest)
}

// AdminUnlock never succeeds while no admin password is configured.
func (s *AuthService) AdminUnlock(ctx context.Context, password string) (*response_models.UnlockResponse, error) {
	return s.unlock(ctx, s.passwords.Admin, password, utils.RoleAdmin)
}

func (s *AuthService) unlock(ctx context.Context, want, got, role string) (*response_models.UnlockResponse, error) {
	if want == "" || subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		logger.FromContext(ctx).Warn().Str("role", role).Msg("gate unlock rejected")
		return nil, utils.ErrInvalidTripPassword
	}

	token, err := s.issuer.CreateToken(role)
	if err != nil {
		return nil, err
	}
	return &response_models.UnlockResponse{
		Token:     token,
		Role:      role,
		ExpiresIn: int64(s.issuer.TTL().Seconds()),
	}, nil
}
