package domain

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_country_request")
	ErrDuplicateName  = errors.New("duplicate_country_name")
	ErrInvalidID      = errors.New("invalid_country_id")
	ErrNotFound       = errors.New("country_not_found")
)
