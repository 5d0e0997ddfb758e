package http

import (
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/service"
)

// Handler holds the dependencies shared by every HTTP endpoint: the service
// layer and the base logger the middleware derives request loggers from.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{services: services, logger: logger}
}
