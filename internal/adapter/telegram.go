// Package adapter implements outbound integrations of the backend. Its only
// collaborator today is the Telegram Bot API.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// ErrBotAPIRejected is returned when the Bot API answers with ok=false.
// The wrapped message carries the API's description.
var ErrBotAPIRejected = errors.New("bot api rejected the request")

// TelegramConfig carries the settings of the Bot API client.
type TelegramConfig struct {
	// APIURL is the Bot API origin, normally "https://api.telegram.org".
	APIURL string

	// BotToken is the bot secret; it becomes part of every method URL.
	BotToken string

	// Timeout bounds every outbound call.
	Timeout time.Duration
}

// telegramBotAPI is the resty-backed implementation of [TelegramClient].
type telegramBotAPI struct {
	client *resty.Client
}

// botAPIResponse is the envelope every Bot API method answers with.
type botAPIResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// NewTelegramBotAPI constructs a [TelegramClient] for the given bot.
func NewTelegramBotAPI(cfg TelegramConfig) TelegramClient {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.telegram.org"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/") + "/bot" + cfg.BotToken).
		SetTimeout(cfg.Timeout)

	return &telegramBotAPI{client: cli}
}

// SendMessage delivers an HTML-formatted text message to chatID.
func (t *telegramBotAPI) SendMessage(ctx context.Context, chatID int64, text string) error {
	body := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	_, err := t.callMethod(ctx, "/sendMessage", body)
	return err
}

// SetWebhook registers url as the bot's webhook endpoint.
func (t *telegramBotAPI) SetWebhook(ctx context.Context, url string) error {
	_, err := t.callMethod(ctx, "/setWebhook", map[string]any{"url": url})
	return err
}

// GetWebhookInfo returns the currently registered webhook state.
func (t *telegramBotAPI) GetWebhookInfo(ctx context.Context) (models.WebhookInfo, error) {
	result, err := t.callMethod(ctx, "/getWebhookInfo", nil)
	if err != nil {
		return models.WebhookInfo{}, err
	}

	var info models.WebhookInfo
	if err := json.Unmarshal(result, &info); err != nil {
		return models.WebhookInfo{}, fmt.Errorf("decode webhook info: %w", err)
	}

	return info, nil
}

// callMethod posts one Bot API method call and unwraps the response
// envelope.
func (t *telegramBotAPI) callMethod(ctx context.Context, method string, body any) (json.RawMessage, error) {
	req := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(method)
	if err != nil {
		return nil, fmt.Errorf("bot api request %s: %w", method, err)
	}

	var envelope botAPIResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode bot api response %s: %w", method, err)
	}

	if !envelope.OK {
		return nil, fmt.Errorf("%w: %s", ErrBotAPIRejected, envelope.Description)
	}

	return envelope.Result, nil
}
