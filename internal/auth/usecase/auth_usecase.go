package usecase

import (
	"context"

	"roulette_webapp/domain"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	AuthenticateUser(ctx context.Context, initData string) (*domain.ProfileResponse, error)
}

type authUsecase struct {
	verifier       InitDataVerifier
	authRepository domain.AuthRepository
}

func NewAuthUsecase(verifier InitDataVerifier, authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		verifier:       verifier,
		authRepository: authRepository,
	}
}

// AuthenticateUser verifies the signed init data and upserts the user row.
// The response distinguishes first contact (created) from a returning user.
func (uc *authUsecase) AuthenticateUser(ctx context.Context, initData string) (*domain.ProfileResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	tgUser, err := uc.verifier.Verify(initData)
	if err != nil {
		logger.AccessLogger.Warn("Init data verification failed", zap.String("request_id", requestID))
		return nil, ErrInvalidCredentials
	}

	user, created, err := uc.authRepository.UpsertUser(ctx, *tgUser)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileResponse{User: *user, Created: created}, nil
}
