package adapter

import (
	"context"

	"github.com/konstrukt-app/konstrukt-be/models"
)

// TelegramClient is the outbound interface to the Telegram Bot API. Only the
// methods this backend actually calls are exposed.
type TelegramClient interface {
	// SendMessage delivers a text message to the given chat.
	SendMessage(ctx context.Context, chatID int64, text string) error

	// SetWebhook registers url as the bot's webhook endpoint.
	SetWebhook(ctx context.Context, url string) error

	// GetWebhookInfo returns the currently registered webhook state.
	GetWebhookInfo(ctx context.Context) (models.WebhookInfo, error)
}
