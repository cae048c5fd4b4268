package service

import (
	"context"

	"wallet_api_back/pkg/repository"
)

type DepositAddressService struct {
	repos repository.DepositAddress
}

func NewDepositAddressService(repos repository.DepositAddress) *DepositAddressService {
	return &DepositAddressService{
		repos: repos,
	}
}

func (s *DepositAddressService) GetDepositAddress(ctx context.Context, tgID int64) (string, error) {
	address, err := s.repos.GetLatestDepositAddress(ctx, tgID)
	if err != nil {
		return "", notFound(err, ErrDepositAddressNotFound)
	}
	return address.Address, nil
}
