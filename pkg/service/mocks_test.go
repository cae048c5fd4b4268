package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"wallet_api_back/models"
)

type mockBalanceRepo struct {
	mock.Mock
}

func (m *mockBalanceRepo) GetBalance(ctx context.Context, tgID int64) (float64, error) {
	args := m.Called(ctx, tgID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockBalanceRepo) ChangeBalance(ctx context.Context, tgID int64, delta float64) (float64, error) {
	args := m.Called(ctx, tgID, delta)
	return args.Get(0).(float64), args.Error(1)
}

type mockDepositAddressRepo struct {
	mock.Mock
}

func (m *mockDepositAddressRepo) GetLatestDepositAddress(ctx context.Context, tgID int64) (models.DepositAddress, error) {
	args := m.Called(ctx, tgID)
	return args.Get(0).(models.DepositAddress), args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) SaveProfile(ctx context.Context, tgID int64, profile models.Profile) (models.Profile, error) {
	args := m.Called(ctx, tgID, profile)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, tgID int64) (models.Profile, error) {
	args := m.Called(ctx, tgID)
	return args.Get(0).(models.Profile), args.Error(1)
}
