package mocks

import (
	"context"

	"roulette_webapp/domain"

	"github.com/stretchr/testify/mock"
)

type MockGameUsecase struct {
	mock.Mock
}

func (m *MockGameUsecase) Spin(ctx context.Context, tgUser domain.TelegramUser, betChoice string) (*domain.SpinResponse, error) {
	args := m.Called(ctx, tgUser, betChoice)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.SpinResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameUsecase) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.InventoryItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameUsecase) ClaimItem(ctx context.Context, userID string, itemID int) (*domain.ClaimResponse, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ClaimResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) ExecuteSpin(ctx context.Context, tgUser domain.TelegramUser, spinCost int, result string, isWin bool, betChoice string, item *domain.InventoryItem) (int, error) {
	args := m.Called(ctx, tgUser, spinCost, result, isWin, betChoice, item)
	return args.Int(0), args.Error(1)
}

func (m *MockGameRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.InventoryItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameRepository) ClaimItem(ctx context.Context, userID string, itemID int) (*domain.ClaimResponse, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ClaimResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
