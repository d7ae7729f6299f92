package repository

import (
	"context"
	"errors"
	"time"

	"roulette_webapp/domain"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type authRepository struct {
	db           *gorm.DB
	startBalance int
}

func NewAuthRepository(db *gorm.DB, startBalance int) domain.AuthRepository {
	return &authRepository{
		db:           db,
		startBalance: startBalance,
	}
}

// UpsertUser creates the user row on first contact and refreshes the
// display fields and last_active on every later one. The second return
// value reports whether the row was created by this call.
func (r *authRepository) UpsertUser(ctx context.Context, tgUser domain.TelegramUser) (*domain.User, bool, error) {
	requestID := middleware.GetRequestID(ctx)
	userID := tgUser.Identity()
	logger.DBLogger.Info("UpsertUser called", zap.String("request_id", requestID), zap.String("user_id", userID))

	var user domain.User
	created := false

	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "user_id = ?", userID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to fetch user")
			}

			now := time.Now().UTC()
			user = domain.User{
				UserID:     userID,
				Username:   tgUser.Username,
				FirstName:  tgUser.FirstName,
				LastName:   tgUser.LastName,
				Balance:    r.startBalance,
				CreatedAt:  now,
				LastActive: now,
			}
			if err := tx.Create(&user).Error; err != nil {
				logger.DBLogger.Error("Failed to create user", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to create user")
			}
			created = true
			return nil
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{
			"username":    tgUser.Username,
			"first_name":  tgUser.FirstName,
			"last_name":   tgUser.LastName,
			"last_active": now,
		}
		if err := tx.Model(&domain.User{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
			logger.DBLogger.Error("Failed to update user", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update user")
		}
		user.Username = tgUser.Username
		user.FirstName = tgUser.FirstName
		user.LastName = tgUser.LastName
		user.LastActive = now
		return nil
	}); err != nil {
		return nil, false, err
	}

	if created {
		logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.String("user_id", userID))
	} else {
		logger.DBLogger.Info("Successfully refreshed user", zap.String("request_id", requestID), zap.String("user_id", userID))
	}
	return &user, created, nil
}
