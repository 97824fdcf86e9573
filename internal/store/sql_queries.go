package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-realty-api/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns     = []string{"id", "email", "password_hash", "created_at"}
	propertyColumns = []string{
		"id", "owner_id", "title", "address", "lat", "lng",
		"price", "beds", "baths", "sqft", "built", "lot",
		"description", "available", "for_rent", "for_sale", "posted_on",
	}
	todoColumns = []string{"id", "owner_id", "text", "completed", "completed_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// prefixed qualifies every column with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ── users ───────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildFindUserByTokenQuery joins the user with the exact token so the
// identity and the token membership are resolved in one statement.
func buildFindUserByTokenQuery(b sq.StatementBuilderType, userID, token string) (string, []any, error) {
	columns := append(prefixed("u", userColumns), "t.access", "t.token", "t.expires_at")
	return b.Select(columns...).
		From(models.User{}.TableName() + " u").
		Join(models.UserToken{}.TableName() + " t ON t.user_id = u.id").
		Where(sq.Eq{"u.id": userID, "t.token": token}).
		ToSql()
}

// ── tokens ──────────────────────────────────────────────────────────────────

func buildAddTokenQuery(b sq.StatementBuilderType, token models.UserToken, createdAt time.Time) (string, []any, error) {
	return b.Insert(models.UserToken{}.TableName()).
		Columns("user_id", "access", "token", "created_at", "expires_at").
		Values(token.UserID, token.Access, token.Token, createdAt, token.ExpiresAt).
		ToSql()
}

func buildRemoveTokenQuery(b sq.StatementBuilderType, userID, token string) (string, []any, error) {
	return b.Delete(models.UserToken{}.TableName()).
		Where(sq.Eq{"user_id": userID, "token": token}).
		ToSql()
}

func buildDeleteExpiredTokensQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(models.UserToken{}.TableName()).
		Where(sq.And{
			sq.NotEq{"expires_at": nil},
			sq.Lt{"expires_at": now},
		}).
		ToSql()
}

// ── properties ──────────────────────────────────────────────────────────────

func buildCreatePropertyQuery(b sq.StatementBuilderType, p models.Property) (string, []any, error) {
	return b.Insert(models.Property{}.TableName()).
		Columns(propertyColumns...).
		Values(
			p.ID, p.OwnerID, p.Title, p.Address, p.Lat, p.Long,
			p.Price, p.Beds, p.Baths, p.Sqft, p.Built, p.Lot,
			p.Description, p.Available, p.ForRent, p.ForSale, p.PostedOn,
		).
		Suffix(returning(propertyColumns)).
		ToSql()
}

// buildSelectPropertiesQuery selects listings matching filter (nil selects all)
// in creation order.
func buildSelectPropertiesQuery(b sq.StatementBuilderType, filter sq.Eq) (string, []any, error) {
	query := b.Select(propertyColumns...).
		From(models.Property{}.TableName()).
		OrderBy("posted_on", "id")
	if len(filter) > 0 {
		query = query.Where(filter)
	}
	return query.ToSql()
}

// propertySetMap converts the present fields of changes into column values.
// A geocoded location replaces address and coordinates together.
func propertySetMap(changes models.PropertyChanges) map[string]any {
	set := make(map[string]any)

	if changes.Title != nil {
		set["title"] = *changes.Title
	}
	if changes.Location != nil {
		set["address"] = changes.Location.FormattedAddress
		set["lat"] = changes.Location.Lat
		set["lng"] = changes.Location.Long
	} else if changes.Address != nil {
		set["address"] = *changes.Address
	}
	if changes.Price != nil {
		set["price"] = *changes.Price
	}
	if changes.Beds != nil {
		set["beds"] = *changes.Beds
	}
	if changes.Baths != nil {
		set["baths"] = *changes.Baths
	}
	if changes.Sqft != nil {
		set["sqft"] = *changes.Sqft
	}
	if changes.Built != nil {
		set["built"] = *changes.Built
	}
	if changes.Lot != nil {
		set["lot"] = *changes.Lot
	}
	if changes.Description != nil {
		set["description"] = *changes.Description
	}
	if changes.ForRent != nil {
		set["for_rent"] = *changes.ForRent
	}
	if changes.ForSale != nil {
		set["for_sale"] = *changes.ForSale
	}

	return set
}

func buildUpdateOwnedPropertyQuery(b sq.StatementBuilderType, id, ownerID string, changes models.PropertyChanges) (string, []any, error) {
	set := propertySetMap(changes)
	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return b.Update(models.Property{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning(propertyColumns)).
		ToSql()
}

func buildDeleteOwnedPropertyQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(models.Property{}.TableName()).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning(propertyColumns)).
		ToSql()
}

// ── todos ───────────────────────────────────────────────────────────────────

func buildCreateTodoQuery(b sq.StatementBuilderType, t models.Todo) (string, []any, error) {
	return b.Insert(models.Todo{}.TableName()).
		Columns(todoColumns...).
		Values(t.ID, t.OwnerID, t.Text, t.Completed, t.CompletedAt).
		Suffix(returning(todoColumns)).
		ToSql()
}

func buildSelectTodosQuery(b sq.StatementBuilderType, filter sq.Eq) (string, []any, error) {
	return b.Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(filter).
		OrderBy("id").
		ToSql()
}

// buildUpdateOwnedTodoQuery writes completed and completed_at together so
// the pair can never disagree.
func buildUpdateOwnedTodoQuery(b sq.StatementBuilderType, id, ownerID string, changes models.TodoChanges) (string, []any, error) {
	set := make(map[string]any)
	if changes.Text != nil {
		set["text"] = *changes.Text
	}
	if changes.Completed != nil {
		set["completed"] = *changes.Completed
		set["completed_at"] = changes.CompletedAt
	}
	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return b.Update(models.Todo{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning(todoColumns)).
		ToSql()
}

func buildDeleteOwnedTodoQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning(todoColumns)).
		ToSql()
}
