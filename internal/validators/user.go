package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/MKhiriev/go-realty-api/models"
)

// UserValidator implements the Validator interface for account credentials.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate supports models.Credentials (value or pointer) and plain string
// identifiers scoped with FieldID.
//
// Default validated fields for credentials: FieldEmail, FieldPassword.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case string:
		return validateID(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(creds.Password) < MinPasswordLength || len(creds.Password) > MaxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare addr-spec with a dotted domain, rejecting
// display names and angle-bracket forms that net/mail would otherwise parse.
func isValidEmail(email string) bool {
	if email == "" || email != strings.TrimSpace(email) {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

func validateID(id string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidID(id) {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
