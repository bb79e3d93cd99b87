package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Country is a lookup record referenced by persons. Countries are created
// once and never updated or deleted.
type Country struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"column:country_name;not null;uniqueIndex" json:"country_name"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Country) TableName() string {
	return "countries"
}

// CountryResponse is the read model handed to the presentation layer.
type CountryResponse struct {
	ID   snowflake.ID `json:"id"`
	Name string       `json:"country_name"`
}

func (c *Country) ToResponse() CountryResponse {
	return CountryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}
