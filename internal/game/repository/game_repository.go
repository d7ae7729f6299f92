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
	"gorm.io/gorm/clause"
)

type gameRepository struct {
	db           *gorm.DB
	startBalance int
}

func NewGameRepository(db *gorm.DB, startBalance int) domain.GameRepository {
	return &gameRepository{
		db:           db,
		startBalance: startBalance,
	}
}

// ExecuteSpin applies the full spin transition in one transaction: balance
// debit, counter updates, optional reward insert and the history record.
// The user row is locked for the duration so concurrent spins serialize.
func (r *gameRepository) ExecuteSpin(ctx context.Context, tgUser domain.TelegramUser, spinCost int, result string, isWin bool, betChoice string, item *domain.InventoryItem) (int, error) {
	requestID := middleware.GetRequestID(ctx)
	userID := tgUser.Identity()
	logger.DBLogger.Info("ExecuteSpin called",
		zap.String("request_id", requestID),
		zap.String("user_id", userID),
		zap.String("result", result),
		zap.Bool("is_win", isWin),
	)

	newBalance := 0
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "user_id = ?", userID).Error; err != nil {
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
		}

		if user.Balance < spinCost {
			logger.DBLogger.Warn("Insufficient balance", zap.String("request_id", requestID), zap.String("user_id", userID))
			return errors.New("insufficient balance")
		}

		now := time.Now().UTC()
		user.Balance -= spinCost
		user.TotalSpins++
		if isWin {
			user.TotalWins++
			user.CurrentStreak++
			if user.CurrentStreak > user.WinStreak {
				user.WinStreak = user.CurrentStreak
			}
		} else {
			user.CurrentStreak = 0
		}

		updates := map[string]interface{}{
			"balance":        user.Balance,
			"total_spins":    user.TotalSpins,
			"total_wins":     user.TotalWins,
			"win_streak":     user.WinStreak,
			"current_streak": user.CurrentStreak,
			"last_active":    now,
		}
		if err := tx.Model(&domain.User{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
			logger.DBLogger.Error("Failed to update user", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update user balance")
		}

		if item != nil {
			if err := tx.Create(item).Error; err != nil {
				logger.DBLogger.Error("Failed to create inventory item", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to add reward to inventory")
			}
		}

		history := domain.SpinHistory{
			UserID:    userID,
			Result:    result,
			IsWin:     isWin,
			BetChoice: betChoice,
			Timestamp: now,
		}
		if err := tx.Create(&history).Error; err != nil {
			logger.DBLogger.Error("Failed to create spin history", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to record spin history")
		}

		newBalance = user.Balance
		return nil
	}); err != nil {
		return 0, err
	}

	logger.DBLogger.Info("Successfully executed spin", zap.String("request_id", requestID), zap.String("user_id", userID), zap.Int("new_balance", newBalance))
	return newBalance, nil
}

func (r *gameRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetInventory called", zap.String("request_id", requestID), zap.String("user_id", userID))

	var items []domain.InventoryItem
	if err := r.db.Where("user_id = ?", userID).Order("timestamp DESC").Find(&items).Error; err != nil {
		logger.DBLogger.Error("Failed to get inventory", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch inventory")
	}
	return items, nil
}

// ClaimItem credits an unclaimed star reward exactly once. The item row is
// locked inside the transaction, so a concurrent claim of the same id
// observes is_claimed = true and resolves to not-found.
func (r *gameRepository) ClaimItem(ctx context.Context, userID string, itemID int) (*domain.ClaimResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ClaimItem called", zap.String("request_id", requestID), zap.String("user_id", userID), zap.Int("item_id", itemID))

	response := &domain.ClaimResponse{}
	if err := r.db.Transaction(func(tx *gorm.DB) error {
		var item domain.InventoryItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_id", itemID))
				return errors.New("item not found")
			}
			logger.DBLogger.Error("Failed to get inventory item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch inventory item")
		}

		if item.IsClaimed {
			logger.DBLogger.Warn("Item already claimed", zap.String("request_id", requestID), zap.Int("item_id", itemID))
			return errors.New("item not found")
		}
		if item.Amount <= 0 {
			logger.DBLogger.Warn("Item is not claimable", zap.String("request_id", requestID), zap.Int("item_id", itemID))
			return errors.New("this item cannot be claimed")
		}

		var user domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("user not found")
			}
			logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch user")
		}

		claimUpdate := tx.Model(&domain.InventoryItem{}).
			Where("id = ? AND is_claimed = ?", itemID, false).
			Update("is_claimed", true)
		if claimUpdate.Error != nil {
			logger.DBLogger.Error("Failed to update inventory item", zap.String("request_id", requestID), zap.Error(claimUpdate.Error))
			return errors.New("failed to update inventory item")
		}
		if claimUpdate.RowsAffected == 0 {
			return errors.New("item not found")
		}

		newBalance := user.Balance + item.Amount
		updates := map[string]interface{}{
			"balance":     newBalance,
			"last_active": time.Now().UTC(),
		}
		if err := tx.Model(&domain.User{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
			logger.DBLogger.Error("Failed to update user", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to update user balance")
		}

		response.Success = true
		response.NewBalance = newBalance
		response.ClaimedAmount = item.Amount
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully claimed item", zap.String("request_id", requestID), zap.String("user_id", userID), zap.Int("item_id", itemID), zap.Int("amount", response.ClaimedAmount))
	return response, nil
}
