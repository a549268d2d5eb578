package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/konstrukt-app/konstrukt-be/models"
)

const (
	findUserByID = `SELECT id, telegram_id, first_name, last_name, username, administrator, created_at
    FROM users
    WHERE id = $1;`

	findUserByTelegramID = `SELECT id, telegram_id, first_name, last_name, username, administrator, created_at
    FROM users
    WHERE telegram_id = $1;`

	listOrders = `SELECT id, user_id, data, approved, revision_comment, created_at
    FROM orders
    ORDER BY created_at DESC;`

	createTemplate = `INSERT INTO templates (id, name, description, title_ru, title_en, body_ru, body_en, is_active, sort_order)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, name, description, title_ru, title_en, body_ru, body_en, is_active, sort_order, created_at, updated_at;`

	deleteTemplate = `DELETE FROM templates WHERE id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindUsersByIDs builds a SELECT over the users table matching any of
// the given internal ids.
func buildFindUsersByIDs(ids []string) (string, []any, error) {
	return psql.
		Select("id", "telegram_id", "first_name", "last_name", "username", "administrator", "created_at").
		From("users").
		Where(sq.Eq{"id": ids}).
		ToSql()
}

// buildListTemplates builds the template listing query. Inactive templates
// are filtered out for the public surface only.
func buildListTemplates(onlyActive bool) (string, []any, error) {
	builder := psql.
		Select("id", "name", "description", "title_ru", "title_en", "body_ru", "body_en",
			"is_active", "sort_order", "created_at", "updated_at").
		From("templates").
		OrderBy("sort_order ASC", "created_at ASC")

	if onlyActive {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	return builder.ToSql()
}

// buildUpdateTemplate builds a partial UPDATE from the non-nil fields of
// input. Returns [ErrNothingToUpdate] when input carries no fields.
func buildUpdateTemplate(id string, input models.TemplateInput) (string, []any, error) {
	builder := psql.
		Update("templates").
		Set("updated_at", sq.Expr("NOW()"))

	fieldsSet := 0
	setIfPresent := func(column string, value *string) {
		if value != nil {
			builder = builder.Set(column, *value)
			fieldsSet++
		}
	}

	setIfPresent("name", input.Name)
	setIfPresent("description", input.Description)
	setIfPresent("title_ru", input.TitleRU)
	setIfPresent("title_en", input.TitleEN)
	setIfPresent("body_ru", input.BodyRU)
	setIfPresent("body_en", input.BodyEN)

	if input.IsActive != nil {
		builder = builder.Set("is_active", *input.IsActive)
		fieldsSet++
	}
	if input.SortOrder != nil {
		builder = builder.Set("sort_order", *input.SortOrder)
		fieldsSet++
	}

	if fieldsSet == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, description, title_ru, title_en, body_ru, body_en, is_active, sort_order, created_at, updated_at").
		ToSql()
}

// buildReviewOrder builds the UPDATE applying an admin verdict to an order.
// Approval clears the stored revision comment.
func buildReviewOrder(review models.OrderReview) (string, []any, error) {
	builder := psql.Update("orders")

	fieldsSet := 0
	if review.Approved != nil {
		builder = builder.Set("approved", *review.Approved)
		fieldsSet++
	}

	// approval always clears the stored comment, even when one was sent
	comment := review.RevisionComment
	if review.Approved != nil && *review.Approved {
		empty := ""
		comment = &empty
	}
	if comment != nil {
		builder = builder.Set("revision_comment", *comment)
		fieldsSet++
	}

	if fieldsSet == 0 {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"id": review.ID}).
		Suffix("RETURNING id, user_id, data, approved, revision_comment, created_at").
		ToSql()
}
