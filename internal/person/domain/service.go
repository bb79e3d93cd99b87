package domain

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/contacts/internal/validation"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// GenderOptions lists the values accepted at the request layer.
func GenderOptions() []string {
	return []string{GenderMale, GenderFemale, GenderOther}
}

// SortOrder selects the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder defaults to ascending for anything that is not DESC.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

type AddPersonRequest struct {
	PersonName         string
	Email              string
	DateOfBirth        *time.Time
	Gender             string
	CountryID          *snowflake.ID
	Address            string
	ReceiveNewsLetters bool
	TaxIdNumber        string
}

func (r AddPersonRequest) Validate() error {
	var rules validation.Collector
	rules.Required("email", r.Email)
	rules.Email("email", r.Email)
	rules.MaxLen("email", r.Email, 40)
	rules.MaxLen("person_name", r.PersonName, 40)
	rules.MaxLen("address", r.Address, 200)
	rules.OneOf("gender", r.Gender, GenderOptions()...)
	return rules.Err()
}

type UpdatePersonRequest struct {
	ID                 snowflake.ID
	PersonName         string
	Email              string
	DateOfBirth        *time.Time
	Gender             string
	CountryID          *snowflake.ID
	Address            string
	ReceiveNewsLetters bool
	TaxIdNumber        string
}

func (r UpdatePersonRequest) Validate() error {
	var rules validation.Collector
	if r.ID == 0 {
		rules.Required("id", "")
	}
	rules.Required("person_name", r.PersonName)
	rules.MaxLen("person_name", r.PersonName, 40)
	rules.Required("email", r.Email)
	rules.Email("email", r.Email)
	rules.MaxLen("email", r.Email, 40)
	rules.MaxLen("address", r.Address, 200)
	rules.OneOf("gender", r.Gender, GenderOptions()...)
	return rules.Err()
}

type Service interface {
	Add(ctx context.Context, req AddPersonRequest) (PersonResponse, error)
	// Update overwrites every mutable field of the matching record.
	Update(ctx context.Context, req UpdatePersonRequest) (PersonResponse, error)
	// Delete reports whether a record was removed; deleting an unknown ID
	// returns false without an error.
	Delete(ctx context.Context, id snowflake.ID) (bool, error)
	GetByID(ctx context.Context, id snowflake.ID) (PersonResponse, error)
	GetAll(ctx context.Context) ([]PersonResponse, error)
	GetFiltered(ctx context.Context, searchBy, searchString string) ([]PersonResponse, error)
	GetSorted(list []PersonResponse, sortBy string, order SortOrder) []PersonResponse
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportExcel(ctx context.Context) ([]byte, error)
}
