package domain

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_person_request")
	// ErrUnknownPerson is an invalid-argument condition: an update referenced
	// an ID that does not exist.
	ErrUnknownPerson = errors.New("unknown_person")
	// ErrUnknownCountry is returned when a write references a country that
	// does not exist.
	ErrUnknownCountry = errors.New("unknown_country")
	ErrNotFound       = errors.New("person_not_found")
)
