package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, country *Country) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Country, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Country, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Country, error)
}
