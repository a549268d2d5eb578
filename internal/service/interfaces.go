package service

import (
	"context"

	"github.com/konstrukt-app/konstrukt-be/models"
)

// AuthService is the identity and authorization core. It turns per-request
// credentials into a resolved identity and decides whether that identity may
// use the admin surface.
type AuthService interface {
	// ResolveIdentity verifies whatever credentials are present and
	// reconciles them against the user directory. Fields of the returned
	// identity are independently empty when nothing proved them.
	ResolveIdentity(ctx context.Context, creds models.CredentialBundle) models.Identity

	// RequireAdmin is the composite gate used by every privileged
	// handler: it resolves the identity, then demands the administrator
	// flag. Returns [ErrUnauthenticated] when no application identity
	// could be established, [ErrForbidden] when the identity is not an
	// administrator.
	RequireAdmin(ctx context.Context, creds models.CredentialBundle) (models.Identity, error)

	// IsAdmin reports the administrator flag of the given user id.
	// An empty id is false without any lookup; lookup failures are false.
	IsAdmin(ctx context.Context, userID string) bool
}

// OrderService serves the admin order review surface.
type OrderService interface {
	// ListOrders returns all orders, newest first, with submitter
	// directory records joined in.
	ListOrders(ctx context.Context) ([]models.Order, error)

	// ReviewOrder validates and applies an admin verdict.
	ReviewOrder(ctx context.Context, review models.OrderReview) (models.Order, error)
}

// TemplateService serves the template management surface and the public
// template listing.
type TemplateService interface {
	ListTemplates(ctx context.Context, includeInactive bool) ([]models.Template, error)
	CreateTemplate(ctx context.Context, input models.TemplateInput) (models.Template, error)
	UpdateTemplate(ctx context.Context, id string, input models.TemplateInput) (models.Template, error)
	DeleteTemplate(ctx context.Context, id string) error
}

// MediaService stores uploaded blog media and hands back public URLs.
type MediaService interface {
	UploadMedia(ctx context.Context, upload models.MediaUpload) (string, error)
}

// BotService owns the interaction with the Telegram Bot API: reacting to
// webhook updates and keeping the webhook registration current.
type BotService interface {
	// Configured reports whether a bot token is present. When false the
	// webhook surface reports a deployment error instead of processing.
	Configured() bool

	// HandleUpdate reacts to one webhook update. Updates this service
	// does not care about are dropped without error.
	HandleUpdate(ctx context.Context, update models.Update) error

	// RegisterWebhook registers this deployment's webhook URL with the
	// Bot API and returns the registered URL.
	RegisterWebhook(ctx context.Context) (string, error)

	// EnsureWebhook re-registers the webhook only when the Bot API
	// reports a different URL than the configured one.
	EnsureWebhook(ctx context.Context) error
}
