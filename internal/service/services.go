package service

import (
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
)

// Services groups the services handed to the transport layer.
type Services struct {
	AuthService    AuthService
	JournalService JournalService
	AppInfoService AppInfoService
}

// NewServices wires every service to its repositories.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		JournalService: NewJournalService(storages.JournalRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
