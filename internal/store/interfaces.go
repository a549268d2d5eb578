package store

import (
	"context"

	"github.com/konstrukt-app/konstrukt-be/models"
)

// UserRepository is the read interface over the user directory. The identity
// core performs at most two lookups per request through it and treats every
// failure as "record not found".
type UserRepository interface {
	// FindByID returns the directory record with the given internal id,
	// or [ErrNoUserWasFound].
	FindByID(ctx context.Context, id string) (models.User, error)

	// FindByTelegramID returns the directory record linked to the given
	// Telegram account id, or [ErrNoUserWasFound].
	FindByTelegramID(ctx context.Context, telegramID int64) (models.User, error)

	// FindByIDs returns the directory records for the given internal ids.
	// Missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

// OrderRepository is the data-access interface over submitted orders.
type OrderRepository interface {
	// ListOrders returns all orders, newest first, without user records
	// joined in.
	ListOrders(ctx context.Context) ([]models.Order, error)

	// ReviewOrder applies an admin verdict and returns the updated order,
	// or [ErrOrderNotFound].
	ReviewOrder(ctx context.Context, review models.OrderReview) (models.Order, error)
}

// TemplateRepository is the data-access interface over letter templates.
type TemplateRepository interface {
	// ListTemplates returns templates ordered by sort_order then
	// created_at, both ascending. With onlyActive, inactive templates are
	// filtered out.
	ListTemplates(ctx context.Context, onlyActive bool) ([]models.Template, error)

	// CreateTemplate inserts a new template and returns it with
	// server-assigned fields populated.
	CreateTemplate(ctx context.Context, template models.Template) (models.Template, error)

	// UpdateTemplate applies the non-nil fields of input to the template
	// with the given id and returns the updated row, or
	// [ErrTemplateNotFound].
	UpdateTemplate(ctx context.Context, id string, input models.TemplateInput) (models.Template, error)

	// DeleteTemplate removes the template with the given id. Deleting a
	// missing template returns [ErrTemplateNotFound].
	DeleteTemplate(ctx context.Context, id string) error
}

// MediaStorage is the object-store interface for uploaded blog media.
type MediaStorage interface {
	// Upload stores data under objectName with the given content type and
	// returns the public URL the object is served from.
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}
