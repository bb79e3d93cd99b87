package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/contacts/internal/country/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, country *domain.Country) error {
	return db.WithContext(ctx).Create(country).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Country, error) {
	var country domain.Country
	err := db.WithContext(ctx).First(&country, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Country, error) {
	var country domain.Country
	err := db.WithContext(ctx).First(&country, "country_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Country, error) {
	var countries []domain.Country
	err := db.WithContext(ctx).
		Order("country_name asc, id asc").
		Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}
