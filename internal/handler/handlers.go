package handler

import (
	"fmt"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/handler/http"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/session"
	"github.com/MKhiriev/go-journal/internal/view"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers together with the session
// manager and the page renderer they depend on.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	views, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("error loading page templates: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, session.NewManager(cfg.App), views, cfg.Server, logger),
	}, nil
}
