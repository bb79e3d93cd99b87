package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/contacts/internal/clock"
	countrydomain "github.com/smallbiznis/contacts/internal/country/domain"
	"github.com/smallbiznis/contacts/internal/person/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Countries countrydomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	countries countrydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("person.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		countries: p.Countries,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddPersonRequest) (domain.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.PersonResponse{}, err
	}

	countryName, err := s.resolveCountry(ctx, req.CountryID)
	if err != nil {
		return domain.PersonResponse{}, err
	}

	now := s.clock.Now()
	person := domain.Person{
		ID:                 s.genID.Generate(),
		PersonName:         strings.TrimSpace(req.PersonName),
		Email:              strings.TrimSpace(req.Email),
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		CountryID:          req.CountryID,
		Address:            strings.TrimSpace(req.Address),
		ReceiveNewsLetters: req.ReceiveNewsLetters,
		TaxIdNumber:        strings.TrimSpace(req.TaxIdNumber),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Insert(ctx, s.db, &person); err != nil {
		return domain.PersonResponse{}, err
	}

	s.log.Info("person added", zap.String("person_id", person.ID.String()))

	return person.ToResponse(now, countryName), nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePersonRequest) (domain.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.PersonResponse{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.PersonResponse{}, err
	}
	if existing == nil {
		return domain.PersonResponse{}, domain.ErrUnknownPerson
	}

	countryName, err := s.resolveCountry(ctx, req.CountryID)
	if err != nil {
		return domain.PersonResponse{}, err
	}

	now := s.clock.Now()
	person := domain.Person{
		ID:                 req.ID,
		PersonName:         strings.TrimSpace(req.PersonName),
		Email:              strings.TrimSpace(req.Email),
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		CountryID:          req.CountryID,
		Address:            strings.TrimSpace(req.Address),
		ReceiveNewsLetters: req.ReceiveNewsLetters,
		TaxIdNumber:        strings.TrimSpace(req.TaxIdNumber),
		CreatedAt:          existing.CreatedAt,
		UpdatedAt:          now,
	}

	updated, err := s.repo.Update(ctx, s.db, &person)
	if err != nil {
		return domain.PersonResponse{}, err
	}
	if !updated {
		return domain.PersonResponse{}, domain.ErrUnknownPerson
	}

	s.log.Info("person updated", zap.String("person_id", person.ID.String()))

	return person.ToResponse(now, countryName), nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) (bool, error) {
	if id == 0 {
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("person deleted", zap.String("person_id", id.String()))
	}
	return deleted, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.PersonResponse, error) {
	if id == 0 {
		return domain.PersonResponse{}, domain.ErrNotFound
	}

	person, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PersonResponse{}, err
	}
	if person == nil {
		return domain.PersonResponse{}, domain.ErrNotFound
	}

	countryName := ""
	if person.CountryID != nil {
		country, err := s.countries.FindByID(ctx, s.db, *person.CountryID)
		if err != nil {
			return domain.PersonResponse{}, err
		}
		if country != nil {
			countryName = country.Name
		}
	}

	return person.ToResponse(s.clock.Now(), countryName), nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.PersonResponse, error) {
	persons, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	names, err := s.countryNames(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	responses := make([]domain.PersonResponse, 0, len(persons))
	for i := range persons {
		countryName := ""
		if persons[i].CountryID != nil {
			countryName = names[*persons[i].CountryID]
		}
		responses = append(responses, persons[i].ToResponse(now, countryName))
	}
	return responses, nil
}

// GetFiltered narrows the materialized response list in memory; with one
// filter dimension and no pagination this is a deliberate full scan.
func (s *Service) GetFiltered(ctx context.Context, searchBy, searchString string) ([]domain.PersonResponse, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterPersons(all, searchBy, searchString), nil
}

func (s *Service) GetSorted(list []domain.PersonResponse, sortBy string, order domain.SortOrder) []domain.PersonResponse {
	return sortPersons(list, sortBy, order)
}

// resolveCountry enforces referential integrity at write time: a non-nil
// country reference must name an existing country.
func (s *Service) resolveCountry(ctx context.Context, id *snowflake.ID) (string, error) {
	if id == nil {
		return "", nil
	}
	country, err := s.countries.FindByID(ctx, s.db, *id)
	if err != nil {
		return "", err
	}
	if country == nil {
		return "", domain.ErrUnknownCountry
	}
	return country.Name, nil
}

func (s *Service) countryNames(ctx context.Context) (map[snowflake.ID]string, error) {
	countries, err := s.countries.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	names := make(map[snowflake.ID]string, len(countries))
	for i := range countries {
		names[countries[i].ID] = countries[i].Name
	}
	return names, nil
}
