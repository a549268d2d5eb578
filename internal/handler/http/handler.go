package http

import (
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
