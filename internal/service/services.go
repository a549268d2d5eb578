package service

import (
	"github.com/konstrukt-app/konstrukt-be/internal/adapter"
	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
)

type Services struct {
	AuthService     AuthService
	OrderService    OrderService
	TemplateService TemplateService
	MediaService    MediaService
	BotService      BotService
}

func NewServices(storages *store.Storages, telegram adapter.TelegramClient, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		OrderService:    NewOrderService(storages.OrderRepository, storages.UserRepository, logger),
		TemplateService: NewTemplateService(storages.TemplateRepository, logger),
		MediaService:    NewMediaService(storages.MediaStorage, logger),
		BotService:      NewBotService(telegram, cfg, logger),
	}
}
