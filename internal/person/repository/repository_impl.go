package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/contacts/internal/person/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, person *domain.Person) error {
	return db.WithContext(ctx).Create(person).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Person, error) {
	var person domain.Person
	err := db.WithContext(ctx).First(&person, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Person, error) {
	var persons []domain.Person
	err := db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, person *domain.Person) (bool, error) {
	// Selecting the columns explicitly forces zero values (cleared fields,
	// false flags) to be written as well; updates overwrite the whole row.
	result := db.WithContext(ctx).
		Model(&domain.Person{}).
		Where("id = ?", person.ID).
		Select("person_name", "email", "date_of_birth", "gender", "country_id",
			"address", "receive_news_letters", "tax_id_number", "updated_at").
		Updates(person)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	result := db.WithContext(ctx).Delete(&domain.Person{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
