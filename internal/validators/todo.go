package validators

import (
	"context"

	"github.com/MKhiriev/go-realty-api/models"
)

// TodoValidator implements the Validator interface for task DTOs.
type TodoValidator struct {
}

// NewTodoValidator constructs a new TodoValidator
// and returns it as the Validator interface.
func NewTodoValidator() Validator {
	return &TodoValidator{}
}

func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TodoCreate:
		return v.validateText(&value.Text, true, fields...)
	case *models.TodoCreate:
		return v.validateText(&value.Text, true, fields...)
	case models.TodoUpdate:
		return v.validateText(value.Text, false, fields...)
	case *models.TodoUpdate:
		return v.validateText(value.Text, false, fields...)
	case string:
		return validateID(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateText checks the text field; a nil text is only accepted when the
// field is optional (patches).
func (v *TodoValidator) validateText(text *string, required bool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if text == nil {
				if required {
					return ErrEmptyText
				}
				continue
			}
			if err := requireText(*text, ErrEmptyText); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
