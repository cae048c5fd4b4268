package service

import (
	"context"
	"time"

	"wallet_api_back/models"
	"wallet_api_back/pkg/repository"
)

type PersonalDataService struct {
	repos repository.Profile
}

func NewPersonalDataService(repos repository.Profile) *PersonalDataService {
	return &PersonalDataService{
		repos: repos,
	}
}

// SavePersonalData replaces every personal field of the user. Fields missing from
// input are stored as NULL, erasing whatever was there before.
func (s *PersonalDataService) SavePersonalData(ctx context.Context, input models.PersonalDataInput) (models.PersonalData, error) {
	birthDate, err := parseBirthDate(input.BirthDate)
	if err != nil {
		return models.PersonalData{}, err
	}

	saved, err := s.repos.SaveProfile(ctx, *input.TgID, models.Profile{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: birthDate,
		Gender:    input.Gender,
	})
	if err != nil {
		return models.PersonalData{}, notFound(err, ErrUserNotFound)
	}
	return models.NewPersonalData(saved), nil
}

func (s *PersonalDataService) GetPersonalData(ctx context.Context, tgID int64) (models.PersonalData, error) {
	profile, err := s.repos.GetProfile(ctx, tgID)
	if err != nil {
		return models.PersonalData{}, notFound(err, ErrUserNotFound)
	}
	return models.NewPersonalData(profile), nil
}

// parseBirthDate treats nil and "" as no date. time.Parse rejects impossible
// calendar days such as 2024-02-30.
func parseBirthDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.Parse(models.DateLayout, *value)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &date, nil
}
