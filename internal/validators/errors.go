package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")

	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyAddress   = errors.New("address is required")
	ErrMissingPrice   = errors.New("price is required")
	ErrMissingBeds    = errors.New("beds is required")
	ErrMissingBaths   = errors.New("baths is required")
	ErrMissingSqft    = errors.New("sqft is required")
	ErrNegativeNumber = errors.New("value must not be negative")
	ErrInvalidNumber  = errors.New("value must be a finite number")
	ErrEmptyText      = errors.New("text is required")
)
