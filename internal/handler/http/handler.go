package http

import (
	"time"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/session"
	"github.com/MKhiriev/go-journal/internal/view"
)

// Handler serves the journal's HTML pages and form posts. It holds only
// dependencies that are safe for concurrent use; per-user state travels in
// the session cookie.
type Handler struct {
	services *service.Services
	sessions *session.Manager
	views    *view.Renderer

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, views *view.Renderer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		views:          views,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
