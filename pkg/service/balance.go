package service

import (
	"context"

	"wallet_api_back/pkg/repository"
)

type BalanceService struct {
	repos repository.Balance
}

func NewBalanceService(repos repository.Balance) *BalanceService {
	return &BalanceService{
		repos: repos,
	}
}

func (s *BalanceService) GetBalance(ctx context.Context, tgID int64) (float64, error) {
	balance, err := s.repos.GetBalance(ctx, tgID)
	if err != nil {
		return 0, notFound(err, ErrUserNotFound)
	}
	return balance, nil
}

// ChangeBalance trusts the caller with the magnitude of delta; the storage layer
// only guarantees the result never drops below zero.
func (s *BalanceService) ChangeBalance(ctx context.Context, tgID int64, delta float64) (float64, error) {
	balance, err := s.repos.ChangeBalance(ctx, tgID, delta)
	if err != nil {
		return 0, notFound(err, ErrUserNotFound)
	}
	return balance, nil
}
