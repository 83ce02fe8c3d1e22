package http

import (
	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/service"
)

type Handler struct {
	services *service.ClientServices

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("local facade handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
