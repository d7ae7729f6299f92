package repository

import (
	"context"
	"errors"

	"roulette_webapp/domain"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (r *adminRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListUsers called", zap.String("request_id", requestID))

	var users []domain.User
	if err := r.db.Order("last_active DESC").Find(&users).Error; err != nil {
		logger.DBLogger.Error("Failed to list users", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch users")
	}
	return users, nil
}

func (r *adminRepository) UpdateUser(ctx context.Context, userID string, update domain.AdminUserUpdate) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateUser called", zap.String("request_id", requestID), zap.String("user_id", userID))

	var user domain.User
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.String("user_id", userID))
				return errors.New("user not found")
			}
			logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch user")
		}

		updates := map[string]interface{}{}
		if update.Balance != nil {
			updates["balance"] = *update.Balance
			user.Balance = *update.Balance
		}
		if update.TotalSpins != nil {
			updates["total_spins"] = *update.TotalSpins
			user.TotalSpins = *update.TotalSpins
		}
		if update.TotalWins != nil {
			updates["total_wins"] = *update.TotalWins
			user.TotalWins = *update.TotalWins
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&domain.User{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
			logger.DBLogger.Error("Failed to update user", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update user")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully updated user", zap.String("request_id", requestID), zap.String("user_id", userID))
	return &user, nil
}

func (r *adminRepository) DeleteInventoryItem(ctx context.Context, userID string, itemID int) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteInventoryItem called", zap.String("request_id", requestID), zap.String("user_id", userID), zap.Int("item_id", itemID))

	result := r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&domain.InventoryItem{})
	if result.Error != nil {
		logger.DBLogger.Error("Failed to delete inventory item", zap.String("request_id", requestID), zap.Error(result.Error))
		return errors.New("failed to delete inventory item")
	}
	if result.RowsAffected == 0 {
		logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_id", itemID))
		return errors.New("item not found")
	}

	logger.DBLogger.Info("Successfully deleted inventory item", zap.String("request_id", requestID), zap.Int("item_id", itemID))
	return nil
}

func (r *adminRepository) CountStats(ctx context.Context) (int64, int64, int64, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CountStats called", zap.String("request_id", requestID))

	var totalUsers, totalSpins, totalWins int64
	if err := r.db.Model(&domain.User{}).Count(&totalUsers).Error; err != nil {
		logger.DBLogger.Error("Failed to count users", zap.String("request_id", requestID), zap.Error(err))
		return 0, 0, 0, errors.New("failed to fetch stats")
	}
	if err := r.db.Model(&domain.SpinHistory{}).Count(&totalSpins).Error; err != nil {
		logger.DBLogger.Error("Failed to count spins", zap.String("request_id", requestID), zap.Error(err))
		return 0, 0, 0, errors.New("failed to fetch stats")
	}
	if err := r.db.Model(&domain.SpinHistory{}).Where("is_win = ?", true).Count(&totalWins).Error; err != nil {
		logger.DBLogger.Error("Failed to count wins", zap.String("request_id", requestID), zap.Error(err))
		return 0, 0, 0, errors.New("failed to fetch stats")
	}

	return totalUsers, totalSpins, totalWins, nil
}
