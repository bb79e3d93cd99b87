package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/contacts/internal/validation"
)

type AddCountryRequest struct {
	Name string
}

func (r AddCountryRequest) Validate() error {
	var rules validation.Collector
	rules.Required("country_name", r.Name)
	return rules.Err()
}

type Service interface {
	Add(ctx context.Context, req AddCountryRequest) (CountryResponse, error)
	GetAll(ctx context.Context) ([]CountryResponse, error)
	GetByID(ctx context.Context, id snowflake.ID) (CountryResponse, error)
	// ImportFromExcel reads country names from the "Countries" worksheet,
	// skipping blanks and names already present, and returns the inserted count.
	ImportFromExcel(ctx context.Context, data []byte) (int, error)
}
