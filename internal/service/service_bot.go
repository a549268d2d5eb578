package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/konstrukt-app/konstrukt-be/internal/adapter"
	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// startGreeting is the reply to the /start command. It introduces the
// mini-app in the bot's language.
const startGreeting = "Привет! 👋\n\n" +
	"Сервис «Конструкт» — помогаю собрать официальный запрос в управляющую компанию по 402-ФЗ. " +
	"Открывай мини-приложение и заполняй форму по шагам: получишь черновик письма и готовый PDF."

// botService is the concrete implementation of [BotService].
type botService struct {
	telegram adapter.TelegramClient

	// configured is false when no bot token was provided at startup.
	configured bool

	// webhookURL is the full webhook endpoint derived from the base URL;
	// empty when no base URL is configured.
	webhookURL string

	logger *logger.Logger
}

// NewBotService constructs a [BotService] over the Bot API client.
func NewBotService(telegram adapter.TelegramClient, cfg *config.StructuredConfig, logger *logger.Logger) BotService {
	logger.Debug().Msg("creating bot service")
	return &botService{
		telegram:   telegram,
		configured: cfg.App.BotToken != "",
		webhookURL: cfg.WebhookURL(),
		logger:     logger,
	}
}

// Configured reports whether a bot token is present.
func (s *botService) Configured() bool {
	return s.configured
}

// HandleUpdate reacts to one webhook update: the /start command gets the
// greeting, everything else is acknowledged and dropped.
func (s *botService) HandleUpdate(ctx context.Context, update models.Update) error {
	msg := update.Message
	if msg == nil || strings.TrimSpace(msg.Text) != "/start" {
		return nil
	}

	if err := s.telegram.SendMessage(ctx, msg.Chat.ID, startGreeting); err != nil {
		return fmt.Errorf("error sending start greeting: %w", err)
	}

	return nil
}

// RegisterWebhook registers the configured webhook URL with the Bot API and
// returns it.
func (s *botService) RegisterWebhook(ctx context.Context) (string, error) {
	if !s.configured || s.webhookURL == "" {
		return "", ErrBotNotConfigured
	}

	if err := s.telegram.SetWebhook(ctx, s.webhookURL); err != nil {
		return "", fmt.Errorf("error registering webhook: %w", err)
	}

	return s.webhookURL, nil
}

// EnsureWebhook re-registers the webhook only when the Bot API reports a
// different URL than the configured one.
func (s *botService) EnsureWebhook(ctx context.Context) error {
	if !s.configured || s.webhookURL == "" {
		return ErrBotNotConfigured
	}

	info, err := s.telegram.GetWebhookInfo(ctx)
	if err != nil {
		return fmt.Errorf("error checking webhook registration: %w", err)
	}

	if info.URL == s.webhookURL {
		return nil
	}

	s.logger.Info().Str("registered", info.URL).Str("expected", s.webhookURL).Msg("webhook registration drift, re-registering")
	if err := s.telegram.SetWebhook(ctx, s.webhookURL); err != nil {
		return fmt.Errorf("error re-registering webhook: %w", err)
	}

	return nil
}
