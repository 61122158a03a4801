package services

import (
	"context"

	"atlas/models"
	"atlas/repositories"
	"atlas/requests"
)

// Listeleme ekranındaki projeksiyonların ortak satır limiti.
const projectionLimit = 5

type IQueryService interface {
	GetOverview(ctx context.Context) (*requests.QueryOverview, error)
	CreateCountry(ctx context.Context, name, sortname string, phonecode int) (*models.Country, error)
	DeleteCountry(ctx context.Context, id uint) error
}

type QueryService struct {
	countryRepo repositories.ICountryRepository
	stateRepo   repositories.IStateRepository
}

func NewQueryService() IQueryService {
	return &QueryService{
		countryRepo: repositories.NewCountryRepository(),
		stateRepo:   repositories.NewStateRepository(),
	}
}

func (s *QueryService) GetOverview(ctx context.Context) (*requests.QueryOverview, error) {
	asc, err := s.countryRepo.ListBySortnameAsc(ctx, projectionLimit)
	if err != nil {
		return nil, err
	}

	desc, err := s.countryRepo.ListByPhonecodeDesc(ctx, projectionLimit)
	if err != nil {
		return nil, err
	}

	limited, err := s.countryRepo.ListFirst(ctx, projectionLimit)
	if err != nil {
		return nil, err
	}

	distinct, err := s.countryRepo.ListDistinct(ctx, projectionLimit)
	if err != nil {
		return nil, err
	}

	between, err := s.countryRepo.ListByIDRange(ctx, 1, 50, projectionLimit)
	if err != nil {
		return nil, err
	}

	names, err := s.countryRepo.ListNames(ctx, projectionLimit)
	if err != nil {
		return nil, err
	}

	counts, err := s.stateRepo.CountByCountry(ctx)
	if err != nil {
		return nil, err
	}

	return &requests.QueryOverview{
		AllCountryAsc:      asc,
		AllCountryDesc:     desc,
		AllCountryLimit:    limited,
		AllCountryDistinct: distinct,
		AllCountryBetween:  between,
		AllCountrySelect:   names,
		AllCountryCount:    counts,
	}, nil
}

func (s *QueryService) CreateCountry(ctx context.Context, name, sortname string, phonecode int) (*models.Country, error) {
	country := &models.Country{
		Name:      name,
		Sortname:  sortname,
		Phonecode: phonecode,
	}

	if err := s.countryRepo.Create(ctx, country); err != nil {
		return nil, err
	}

	return country, nil
}

func (s *QueryService) DeleteCountry(ctx context.Context, id uint) error {
	return s.countryRepo.DeleteByID(ctx, id)
}
