package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"roulette_webapp/domain"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"
	"roulette_webapp/internal/service/validation"

	"go.uber.org/zap"
)

type GameUsecase interface {
	Spin(ctx context.Context, tgUser domain.TelegramUser, betChoice string) (*domain.SpinResponse, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
	ClaimItem(ctx context.Context, userID string, itemID int) (*domain.ClaimResponse, error)
}

type gameUsecase struct {
	gameRepository domain.GameRepository
	config         domain.GameConfig
	sectors        []string
}

// NewGameUsecase expands the configured (label, count) pairs into the flat
// sector multiset the draw samples from.
func NewGameUsecase(gameRepository domain.GameRepository, config domain.GameConfig) GameUsecase {
	var sectors []string
	for _, sector := range config.Sectors {
		for i := 0; i < sector.Count; i++ {
			sectors = append(sectors, sector.Label)
		}
	}
	return &gameUsecase{
		gameRepository: gameRepository,
		config:         config,
		sectors:        sectors,
	}
}

func (uc *gameUsecase) drawSector() string {
	return uc.sectors[rand.Intn(len(uc.sectors))]
}

func (uc *gameUsecase) validBetChoice(betChoice string) bool {
	for _, sector := range uc.config.Sectors {
		if sector.Label == betChoice {
			return true
		}
	}
	return false
}

func (uc *gameUsecase) Spin(ctx context.Context, tgUser domain.TelegramUser, betChoice string) (*domain.SpinResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	if !validation.ValidateLabel(betChoice) || !uc.validBetChoice(betChoice) {
		logger.AccessLogger.Warn("Unknown bet choice", zap.String("request_id", requestID), zap.String("bet_choice", betChoice))
		return nil, errors.New("unknown bet choice")
	}

	result := uc.drawSector()
	isWin := result == betChoice

	var item *domain.InventoryItem
	if isWin {
		item = uc.buildReward(tgUser.Identity(), result)
	}

	newBalance, err := uc.gameRepository.ExecuteSpin(ctx, tgUser, uc.config.SpinCost, result, isWin, betChoice, item)
	if err != nil {
		return nil, err
	}

	return &domain.SpinResponse{
		Result:        result,
		IsWin:         isWin,
		RewardAdded:   item != nil,
		NewBalance:    newBalance,
		InventoryItem: item,
	}, nil
}

// buildReward materializes the inventory row for a winning draw. Star
// rewards carry the fixed amount and wait for an explicit claim; collectible
// gifts get a random gif and are born claimed.
func (uc *gameUsecase) buildReward(userID string, result string) *domain.InventoryItem {
	reward, ok := uc.config.Rewards[result]
	if !ok {
		return nil
	}

	item := &domain.InventoryItem{
		UserID:    userID,
		ItemType:  result,
		Rarity:    reward.Rarity,
		Timestamp: time.Now().UTC(),
	}
	if reward.Amount > 0 {
		item.Amount = reward.Amount
		item.IsClaimed = false
	} else {
		gif := uc.config.GifURLs[rand.Intn(len(uc.config.GifURLs))]
		item.GifURL = &gif
		item.IsClaimed = true
	}
	return item
}

func (uc *gameUsecase) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidateIdentity(userID) {
		logger.AccessLogger.Warn("Invalid identity", zap.String("request_id", requestID))
		return nil, errors.New("invalid credentials")
	}
	return uc.gameRepository.GetInventory(ctx, userID)
}

func (uc *gameUsecase) ClaimItem(ctx context.Context, userID string, itemID int) (*domain.ClaimResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidateIdentity(userID) {
		logger.AccessLogger.Warn("Invalid identity", zap.String("request_id", requestID))
		return nil, errors.New("invalid credentials")
	}
	if itemID <= 0 {
		return nil, errors.New("item not found")
	}
	return uc.gameRepository.ClaimItem(ctx, userID, itemID)
}
