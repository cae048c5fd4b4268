package service

import (
	"context"

	"wallet_api_back/models"
	"wallet_api_back/pkg/repository"
)

type Balance interface {
	GetBalance(ctx context.Context, tgID int64) (float64, error)
	ChangeBalance(ctx context.Context, tgID int64, delta float64) (float64, error)
}

type DepositAddress interface {
	GetDepositAddress(ctx context.Context, tgID int64) (string, error)
}

type PersonalData interface {
	SavePersonalData(ctx context.Context, input models.PersonalDataInput) (models.PersonalData, error)
	GetPersonalData(ctx context.Context, tgID int64) (models.PersonalData, error)
}

type Health interface {
	Ping(ctx context.Context) error
}

type Service struct {
	Balance
	DepositAddress
	PersonalData
	Health
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Balance:        NewBalanceService(repos.Balance),
		DepositAddress: NewDepositAddressService(repos.DepositAddress),
		PersonalData:   NewPersonalDataService(repos.Profile),
		Health:         repos.Health,
	}
}
