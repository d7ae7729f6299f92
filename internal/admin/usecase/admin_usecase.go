package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roulette_webapp/domain"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"
	"roulette_webapp/internal/service/validation"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

type AdminUsecase interface {
	Login(ctx context.Context, password string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, update domain.AdminUserUpdate) (*domain.User, error)
	DeleteInventoryItem(ctx context.Context, userID string, itemID int) error
	GetStats(ctx context.Context) (*domain.AdminStatsResponse, error)
}

type adminUsecase struct {
	adminRepository domain.AdminRepository
	passwordHash    string
	redisClient     *redis.Client
}

// NewAdminUsecase takes the bcrypt hash of the admin password and an
// optional redis client; a nil client disables the stats cache.
func NewAdminUsecase(adminRepository domain.AdminRepository, passwordHash string, redisClient *redis.Client) AdminUsecase {
	return &adminUsecase{
		adminRepository: adminRepository,
		passwordHash:    passwordHash,
		redisClient:     redisClient,
	}
}

func (uc *adminUsecase) Login(ctx context.Context, password string) error {
	requestID := middleware.GetRequestID(ctx)
	if !middleware.CheckPassword(uc.passwordHash, password) {
		logger.AccessLogger.Warn("Admin login rejected", zap.String("request_id", requestID))
		return errors.New("invalid credentials")
	}
	logger.AccessLogger.Info("Admin login accepted", zap.String("request_id", requestID))
	return nil
}

func (uc *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.adminRepository.ListUsers(ctx)
}

func (uc *adminUsecase) UpdateUser(ctx context.Context, userID string, update domain.AdminUserUpdate) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidateIdentity(userID) {
		logger.AccessLogger.Warn("Invalid identity", zap.String("request_id", requestID))
		return nil, errors.New("user not found")
	}
	if update.Balance != nil && *update.Balance < 0 {
		logger.AccessLogger.Warn("Negative balance rejected", zap.String("request_id", requestID), zap.String("user_id", userID))
		return nil, errors.New("balance must not be negative")
	}
	if update.TotalSpins != nil && *update.TotalSpins < 0 {
		return nil, errors.New("total spins must not be negative")
	}
	if update.TotalWins != nil && *update.TotalWins < 0 {
		return nil, errors.New("total wins must not be negative")
	}
	return uc.adminRepository.UpdateUser(ctx, userID, update)
}

func (uc *adminUsecase) DeleteInventoryItem(ctx context.Context, userID string, itemID int) error {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidateIdentity(userID) {
		logger.AccessLogger.Warn("Invalid identity", zap.String("request_id", requestID))
		return errors.New("item not found")
	}
	if itemID <= 0 {
		return errors.New("item not found")
	}
	return uc.adminRepository.DeleteInventoryItem(ctx, userID, itemID)
}

func (uc *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStatsResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var stats domain.AdminStatsResponse
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	totalUsers, totalSpins, totalWins, err := uc.adminRepository.CountStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.AdminStatsResponse{
		TotalUsers: totalUsers,
		TotalSpins: totalSpins,
		TotalWins:  totalWins,
	}
	if totalSpins > 0 {
		stats.WinRate = float64(totalWins) / float64(totalSpins) * 100
	}

	if uc.redisClient != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := uc.redisClient.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
				logger.AccessLogger.Warn("Failed to cache stats", zap.String("request_id", requestID), zap.Error(err))
			}
		}
	}

	return stats, nil
}
