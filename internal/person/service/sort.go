package service

import (
	"sort"
	"strings"
	"time"

	"github.com/smallbiznis/contacts/internal/person/domain"
)

// sortableFields maps a sort field name to an ascending comparator. Absent
// values (empty strings, nil dates and ages) order first ascending.
var sortableFields = map[string]func(a, b *domain.PersonResponse) bool{
	"PersonName": func(a, b *domain.PersonResponse) bool {
		return lessString(a.PersonName, b.PersonName)
	},
	"Email": func(a, b *domain.PersonResponse) bool {
		return lessString(a.Email, b.Email)
	},
	"DateOfBirth": func(a, b *domain.PersonResponse) bool {
		return lessTimePtr(a.DateOfBirth, b.DateOfBirth)
	},
	"Gender": func(a, b *domain.PersonResponse) bool {
		return lessString(a.Gender, b.Gender)
	},
	"Age": func(a, b *domain.PersonResponse) bool {
		return lessIntPtr(a.Age, b.Age)
	},
	"Address": func(a, b *domain.PersonResponse) bool {
		return lessString(a.Address, b.Address)
	},
	"Country": func(a, b *domain.PersonResponse) bool {
		return lessString(a.Country, b.Country)
	},
	"ReceiveNewsLetters": func(a, b *domain.PersonResponse) bool {
		return !a.ReceiveNewsLetters && b.ReceiveNewsLetters
	},
}

// sortPersons returns a new list ordered by the named field. The sort is
// stable: ties keep their original relative order. An unrecognized field
// name returns the input unchanged.
func sortPersons(list []domain.PersonResponse, sortBy string, order domain.SortOrder) []domain.PersonResponse {
	less, ok := sortableFields[sortBy]
	if !ok {
		return list
	}

	cmp := less
	if order == domain.SortDesc {
		cmp = func(a, b *domain.PersonResponse) bool {
			return less(b, a)
		}
	}

	sorted := append([]domain.PersonResponse(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(&sorted[i], &sorted[j])
	})
	return sorted
}

func lessString(a, b string) bool {
	fa, fb := strings.ToLower(a), strings.ToLower(b)
	if fa == fb {
		return a < b
	}
	return fa < fb
}

func lessTimePtr(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}

func lessIntPtr(a, b *int) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}
