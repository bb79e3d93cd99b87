package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/contacts/internal/clock"
	"github.com/smallbiznis/contacts/internal/country/domain"
	"github.com/smallbiznis/contacts/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("country.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddCountryRequest) (domain.CountryResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.CountryResponse{}, err
	}

	name := strings.TrimSpace(req.Name)

	// Name uniqueness is checked up front so the caller gets a field-level
	// failure instead of a database constraint error. Exact, case-sensitive.
	existing, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return domain.CountryResponse{}, err
	}
	if existing != nil {
		return domain.CountryResponse{}, domain.ErrDuplicateName
	}

	country := domain.Country{
		ID:        s.genID.Generate(),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &country); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.CountryResponse{}, domain.ErrDuplicateName
		}
		return domain.CountryResponse{}, err
	}

	s.log.Info("country added",
		zap.String("country_id", country.ID.String()),
		zap.String("country_name", country.Name),
	)

	return country.ToResponse(), nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.CountryResponse, error) {
	countries, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CountryResponse, 0, len(countries))
	for i := range countries {
		responses = append(responses, countries[i].ToResponse())
	}
	return responses, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.CountryResponse, error) {
	if id == 0 {
		return domain.CountryResponse{}, domain.ErrNotFound
	}

	country, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.CountryResponse{}, err
	}
	if country == nil {
		return domain.CountryResponse{}, domain.ErrNotFound
	}
	return country.ToResponse(), nil
}
