package mocks

import (
	"context"

	"roulette_webapp/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) AuthenticateUser(ctx context.Context, initData string) (*domain.ProfileResponse, error) {
	args := m.Called(ctx, initData)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ProfileResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) UpsertUser(ctx context.Context, tgUser domain.TelegramUser) (*domain.User, bool, error) {
	args := m.Called(ctx, tgUser)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

// MockInitDataVerifier is shared by the auth and game controller tests.
type MockInitDataVerifier struct {
	mock.Mock
}

func (m *MockInitDataVerifier) Verify(initData string) (*domain.TelegramUser, error) {
	args := m.Called(initData)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.TelegramUser), args.Error(1)
	}
	return nil, args.Error(1)
}
