package usecase

import (
	"context"
	"errors"
	"testing"

	"roulette_webapp/domain"
	"roulette_webapp/internal/game/mocks"
	"roulette_webapp/internal/service/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func singleSectorConfig(label string, reward domain.Reward) domain.GameConfig {
	return domain.GameConfig{
		Sectors: []domain.WheelSector{
			{Label: label, Count: 1, Color: "#06b6d4"},
		},
		Rewards:      map[string]domain.Reward{label: reward},
		GifURLs:      []string{"gifts/Toy Bear.gif"},
		SpinCost:     125,
		StartBalance: 1000,
	}
}

func TestSpin(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()
	tgUser := domain.TelegramUser{ID: 42, FirstName: "Alice"}

	t.Run("Win - Star Reward Creates Unclaimed Item", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		cfg := singleSectorConfig("2x", domain.Reward{Emoji: "2x", Rarity: "common", Amount: 250})
		uc := NewGameUsecase(mockRepo, cfg)

		mockRepo.On("ExecuteSpin", ctx, tgUser, 125, "2x", true, "2x",
			mock.MatchedBy(func(item *domain.InventoryItem) bool {
				return item != nil && item.ItemType == "2x" && item.Amount == 250 &&
					item.GifURL == nil && !item.IsClaimed && item.UserID == "42"
			})).Return(875, nil)

		response, err := uc.Spin(ctx, tgUser, "2x")
		require.NoError(t, err)
		assert.Equal(t, "2x", response.Result)
		assert.True(t, response.IsWin)
		assert.True(t, response.RewardAdded)
		assert.Equal(t, 875, response.NewBalance)
		require.NotNil(t, response.InventoryItem)
		assert.Equal(t, 250, response.InventoryItem.Amount)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Win - Collectible Is Born Claimed With Gif", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		cfg := singleSectorConfig("NFT", domain.Reward{Emoji: "🎨", Rarity: "epic"})
		uc := NewGameUsecase(mockRepo, cfg)

		mockRepo.On("ExecuteSpin", ctx, tgUser, 125, "NFT", true, "NFT",
			mock.MatchedBy(func(item *domain.InventoryItem) bool {
				return item != nil && item.ItemType == "NFT" && item.Amount == 0 &&
					item.GifURL != nil && item.IsClaimed && item.Rarity == "epic"
			})).Return(875, nil)

		response, err := uc.Spin(ctx, tgUser, "NFT")
		require.NoError(t, err)
		assert.True(t, response.IsWin)
		assert.True(t, response.RewardAdded)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Loss - No Inventory Item", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		// "3x" is a configured label with zero sectors, so betting on it
		// always loses.
		cfg := domain.GameConfig{
			Sectors: []domain.WheelSector{
				{Label: "2x", Count: 1, Color: "#06b6d4"},
				{Label: "3x", Count: 0, Color: "#f59e0b"},
			},
			Rewards: map[string]domain.Reward{
				"2x": {Amount: 250},
				"3x": {Amount: 375},
			},
			SpinCost: 125,
		}
		uc := NewGameUsecase(mockRepo, cfg)

		mockRepo.On("ExecuteSpin", ctx, tgUser, 125, "2x", false, "3x", mock.Anything).
			Return(875, nil)

		response, err := uc.Spin(ctx, tgUser, "3x")
		require.NoError(t, err)
		assert.Equal(t, "2x", response.Result)
		assert.False(t, response.IsWin)
		assert.False(t, response.RewardAdded)
		assert.Nil(t, response.InventoryItem)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Bet Choice", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		uc := NewGameUsecase(mockRepo, domain.DefaultGameConfig())

		_, err := uc.Spin(ctx, tgUser, "13x")
		assert.Error(t, err)
		assert.Equal(t, "unknown bet choice", err.Error())
		mockRepo.AssertNotCalled(t, "ExecuteSpin")
	})

	t.Run("Failure - Insufficient Balance Propagated", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		cfg := singleSectorConfig("2x", domain.Reward{Amount: 250})
		uc := NewGameUsecase(mockRepo, cfg)

		mockRepo.On("ExecuteSpin", ctx, tgUser, 125, "2x", true, "2x", mock.Anything).
			Return(0, errors.New("insufficient balance"))

		_, err := uc.Spin(ctx, tgUser, "2x")
		assert.Error(t, err)
		assert.Equal(t, "insufficient balance", err.Error())
	})
}

func TestDrawDistribution(t *testing.T) {
	cfg := domain.GameConfig{
		Sectors: []domain.WheelSector{
			{Label: "A", Count: 30},
			{Label: "B", Count: 12},
			{Label: "C", Count: 5},
			{Label: "D", Count: 1},
		},
		Rewards:  map[string]domain.Reward{},
		SpinCost: 125,
	}
	uc := NewGameUsecase(nil, cfg).(*gameUsecase)
	require.Len(t, uc.sectors, 48)

	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[uc.drawSector()]++
	}

	assert.InDelta(t, 30.0/48.0, float64(counts["A"])/draws, 0.03)
	assert.InDelta(t, 12.0/48.0, float64(counts["B"])/draws, 0.03)
	assert.InDelta(t, 5.0/48.0, float64(counts["C"])/draws, 0.03)
	assert.InDelta(t, 1.0/48.0, float64(counts["D"])/draws, 0.03)
}

func TestGetInventory(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		uc := NewGameUsecase(mockRepo, domain.DefaultGameConfig())

		items := []domain.InventoryItem{{ID: 7, UserID: "42", ItemType: "2x", Amount: 250}}
		mockRepo.On("GetInventory", ctx, "42").Return(items, nil)

		result, err := uc.GetInventory(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, items, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Identity", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		uc := NewGameUsecase(mockRepo, domain.DefaultGameConfig())

		_, err := uc.GetInventory(ctx, "not-a-telegram-id")
		assert.Error(t, err)
		assert.Equal(t, "invalid credentials", err.Error())
		mockRepo.AssertNotCalled(t, "GetInventory")
	})
}

func TestClaimItem(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		uc := NewGameUsecase(mockRepo, domain.DefaultGameConfig())

		response := &domain.ClaimResponse{Success: true, NewBalance: 1125, ClaimedAmount: 250}
		mockRepo.On("ClaimItem", ctx, "42", 7).Return(response, nil)

		result, err := uc.ClaimItem(ctx, "42", 7)
		require.NoError(t, err)
		assert.Equal(t, response, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Item ID", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		uc := NewGameUsecase(mockRepo, domain.DefaultGameConfig())

		_, err := uc.ClaimItem(ctx, "42", 0)
		assert.Error(t, err)
		assert.Equal(t, "item not found", err.Error())
		mockRepo.AssertNotCalled(t, "ClaimItem")
	})

	t.Run("Failure - Invalid Identity", func(t *testing.T) {
		mockRepo := new(mocks.MockGameRepository)
		uc := NewGameUsecase(mockRepo, domain.DefaultGameConfig())

		_, err := uc.ClaimItem(ctx, "abc", 7)
		assert.Error(t, err)
		assert.Equal(t, "invalid credentials", err.Error())
	})
}
