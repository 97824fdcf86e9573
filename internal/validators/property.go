package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/go-realty-api/models"
)

// PropertyValidator implements the Validator interface for listing DTOs:
// PropertyCreate and PropertyUpdate, plus listing identifiers.
type PropertyValidator struct {
}

// NewPropertyValidator constructs a new PropertyValidator
// and returns it as the Validator interface.
func NewPropertyValidator() Validator {
	return &PropertyValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// For PropertyCreate every required field must be present. For PropertyUpdate
// only the fields present in the patch are checked, so an omitted field is
// never an error.
func (v *PropertyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PropertyCreate:
		return v.validateCreate(value, fields...)
	case *models.PropertyCreate:
		return v.validateCreate(*value, fields...)
	case models.PropertyUpdate:
		return v.validateUpdate(value, fields...)
	case *models.PropertyUpdate:
		return v.validateUpdate(*value, fields...)
	case string:
		return validateID(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

var propertyFields = []string{FieldTitle, FieldAddress, FieldPrice, FieldBeds, FieldBaths, FieldSqft, FieldBuilt, FieldLot}

func (v *PropertyValidator) validateCreate(p models.PropertyCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = propertyFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = requireText(p.Title, ErrEmptyTitle)
		case FieldAddress:
			err = requireText(p.Address, ErrEmptyAddress)
		case FieldPrice:
			err = requireNumber(p.Price, ErrMissingPrice)
		case FieldBeds:
			err = requireNumber(p.Beds, ErrMissingBeds)
		case FieldBaths:
			err = requireNumber(p.Baths, ErrMissingBaths)
		case FieldSqft:
			err = requireNumber(p.Sqft, ErrMissingSqft)
		case FieldBuilt:
			err = optionalNumber(p.Built)
		case FieldLot:
			err = optionalNumber(p.Lot)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PropertyValidator) validateUpdate(p models.PropertyUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = propertyFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			if p.Title != nil {
				err = requireText(*p.Title, ErrEmptyTitle)
			}
		case FieldAddress:
			if p.Address != nil {
				err = requireText(*p.Address, ErrEmptyAddress)
			}
		case FieldPrice:
			err = optionalNumber(p.Price)
		case FieldBeds:
			err = optionalNumber(p.Beds)
		case FieldBaths:
			err = optionalNumber(p.Baths)
		case FieldSqft:
			err = optionalNumber(p.Sqft)
		case FieldBuilt:
			err = optionalNumber(p.Built)
		case FieldLot:
			err = optionalNumber(p.Lot)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func requireText(s string, missing error) error {
	if strings.TrimSpace(s) == "" {
		return missing
	}
	return nil
}

func requireNumber(n *float64, missing error) error {
	if n == nil {
		return missing
	}
	return optionalNumber(n)
}

func optionalNumber(n *float64) error {
	if n == nil {
		return nil
	}
	if math.IsNaN(*n) || math.IsInf(*n, 0) {
		return ErrInvalidNumber
	}
	if *n < 0 {
		return ErrNegativeNumber
	}
	return nil
}
