package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, person *Person) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Person, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Person, error)
	// Update overwrites the stored row; it reports false when no row matched.
	Update(ctx context.Context, db *gorm.DB, person *Person) (bool, error)
	// Delete reports false when no row matched.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
}
