package validators

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/MKhiriev/go-realty-api/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func validCreate() models.PropertyCreate {
	return models.PropertyCreate{
		Title:   "Cozy loft",
		Address: "1 Main St",
		Price:   ptr(1200.0),
		Beds:    ptr(2.0),
		Baths:   ptr(1.0),
		Sqft:    ptr(850.0),
	}
}

func TestUserValidator_Credentials(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{"valid", models.Credentials{Email: "a@a.com", Password: "123abc!"}, nil, nil},
		{"plus address", models.Credentials{Email: "first.last+tag@example.co.uk", Password: "123abc!"}, nil, nil},
		{"missing email", models.Credentials{Password: "123abc!"}, nil, ErrInvalidEmail},
		{"no at", models.Credentials{Email: "andrew", Password: "123abc!"}, nil, ErrInvalidEmail},
		{"no dotted domain", models.Credentials{Email: "a@localhost", Password: "123abc!"}, nil, ErrInvalidEmail},
		{"display name", models.Credentials{Email: "Bob <bob@example.com>", Password: "123abc!"}, nil, ErrInvalidEmail},
		{"surrounding spaces", models.Credentials{Email: " a@a.com ", Password: "123abc!"}, nil, ErrInvalidEmail},
		{"short password", models.Credentials{Email: "a@a.com", Password: "123"}, nil, ErrInvalidPassword},
		{"long password", models.Credentials{Email: "a@a.com", Password: strings.Repeat("x", 73)}, nil, ErrInvalidPassword},
		{"email only skips password", models.Credentials{Email: "a@a.com"}, []string{FieldEmail}, nil},
		{"unknown field", models.Credentials{Email: "a@a.com", Password: "123abc!"}, []string{"nope"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.NoError(t, v.Validate(ctx, &models.Credentials{Email: "a@a.com", Password: "123abc!"}))
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidateID(t *testing.T) {
	ctx := context.Background()
	for _, v := range []Validator{NewUserValidator(), NewPropertyValidator(), NewTodoValidator()} {
		assert.NoError(t, v.Validate(ctx, "0192f5a0-7c4e-7b8a-9c1d-2e3f4a5b6c7d"))
		assert.ErrorIs(t, v.Validate(ctx, "123"), ErrInvalidID)
		assert.ErrorIs(t, v.Validate(ctx, ""), ErrInvalidID)
		assert.ErrorIs(t, v.Validate(ctx, "0192f5a0-7c4e-7b8a-9c1d-2e3f4a5b6c7d", FieldTitle), ErrUnknownField)
	}
}

func TestPropertyValidator_Create(t *testing.T) {
	v := NewPropertyValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.PropertyCreate)
		wantErr error
	}{
		{"valid", func(p *models.PropertyCreate) {}, nil},
		{"valid with optionals", func(p *models.PropertyCreate) { p.Built = ptr(1999.0); p.Lot = ptr(0.0) }, nil},
		{"blank title", func(p *models.PropertyCreate) { p.Title = "   " }, ErrEmptyTitle},
		{"blank address", func(p *models.PropertyCreate) { p.Address = "" }, ErrEmptyAddress},
		{"missing price", func(p *models.PropertyCreate) { p.Price = nil }, ErrMissingPrice},
		{"missing beds", func(p *models.PropertyCreate) { p.Beds = nil }, ErrMissingBeds},
		{"missing baths", func(p *models.PropertyCreate) { p.Baths = nil }, ErrMissingBaths},
		{"missing sqft", func(p *models.PropertyCreate) { p.Sqft = nil }, ErrMissingSqft},
		{"negative price", func(p *models.PropertyCreate) { p.Price = ptr(-1.0) }, ErrNegativeNumber},
		{"negative lot", func(p *models.PropertyCreate) { p.Lot = ptr(-5.0) }, ErrNegativeNumber},
		{"nan sqft", func(p *models.PropertyCreate) { p.Sqft = ptr(math.NaN()) }, ErrInvalidNumber},
		{"zero price allowed", func(p *models.PropertyCreate) { p.Price = ptr(0.0) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreate()
			tt.mutate(&p)

			err := v.Validate(ctx, p)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			assert.ErrorIs(t, v.Validate(ctx, &p), tt.wantErr)
		})
	}
}

func TestPropertyValidator_Update(t *testing.T) {
	v := NewPropertyValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.PropertyUpdate
		wantErr error
	}{
		{"empty patch", models.PropertyUpdate{}, nil},
		{"price only", models.PropertyUpdate{Price: ptr(10.0)}, nil},
		{"flags only", models.PropertyUpdate{ForRent: ptr(true), ForSale: ptr(false)}, nil},
		{"blank title", models.PropertyUpdate{Title: ptr(" ")}, ErrEmptyTitle},
		{"blank address", models.PropertyUpdate{Address: ptr("")}, ErrEmptyAddress},
		{"negative beds", models.PropertyUpdate{Beds: ptr(-2.0)}, ErrNegativeNumber},
		{"infinite built", models.PropertyUpdate{Built: ptr(math.Inf(1))}, ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, models.Todo{}), ErrUnsupportedType)
}

func TestTodoValidator(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TodoCreate{Text: "walk the dog"}))
	assert.ErrorIs(t, v.Validate(ctx, models.TodoCreate{Text: "  "}), ErrEmptyText)
	assert.ErrorIs(t, v.Validate(ctx, &models.TodoCreate{}), ErrEmptyText)

	assert.NoError(t, v.Validate(ctx, models.TodoUpdate{}))
	assert.NoError(t, v.Validate(ctx, models.TodoUpdate{Completed: ptr(true)}))
	assert.NoError(t, v.Validate(ctx, &models.TodoUpdate{Text: ptr("new text")}))
	assert.ErrorIs(t, v.Validate(ctx, models.TodoUpdate{Text: ptr("")}), ErrEmptyText)

	assert.ErrorIs(t, v.Validate(ctx, models.TodoCreate{Text: "x"}, FieldTitle), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, 3.14), ErrUnsupportedType)
}
