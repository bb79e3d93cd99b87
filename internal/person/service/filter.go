package service

import (
	"strings"

	"github.com/smallbiznis/contacts/internal/person/domain"
)

// dateOfBirthLayout is the display format search strings are matched
// against, e.g. "06 May 2002".
const dateOfBirthLayout = "02 January 2006"

// searchableFields maps a search field name to an accessor returning the
// text a search string is matched against. The bool reports whether the
// record carries a value for that field; records without one pass every
// filter. "CountryID" matches against the resolved country name.
var searchableFields = map[string]func(p *domain.PersonResponse) (string, bool){
	"PersonName": func(p *domain.PersonResponse) (string, bool) {
		return p.PersonName, p.PersonName != ""
	},
	"Email": func(p *domain.PersonResponse) (string, bool) {
		return p.Email, p.Email != ""
	},
	"DateOfBirth": func(p *domain.PersonResponse) (string, bool) {
		if p.DateOfBirth == nil {
			return "", false
		}
		return p.DateOfBirth.Format(dateOfBirthLayout), true
	},
	"Gender": func(p *domain.PersonResponse) (string, bool) {
		return p.Gender, p.Gender != ""
	},
	"CountryID": func(p *domain.PersonResponse) (string, bool) {
		return p.Country, p.Country != ""
	},
	"Address": func(p *domain.PersonResponse) (string, bool) {
		return p.Address, p.Address != ""
	},
}

// filterPersons keeps the records whose field value contains the search
// text case-insensitively. An empty field or search text, or an
// unrecognized field name, returns the input unchanged.
func filterPersons(list []domain.PersonResponse, searchBy, searchText string) []domain.PersonResponse {
	if searchBy == "" || searchText == "" {
		return list
	}
	accessor, ok := searchableFields[searchBy]
	if !ok {
		return list
	}

	needle := strings.ToLower(searchText)
	matched := make([]domain.PersonResponse, 0, len(list))
	for i := range list {
		value, present := accessor(&list[i])
		if !present || strings.Contains(strings.ToLower(value), needle) {
			matched = append(matched, list[i])
		}
	}
	return matched
}
