package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	_, err := utils.WriteJSON(w, models.VersionResponse{
		Version: buildInfo.BuildVersion(),
		Date:    buildInfo.BuildDate(),
		Commit:  buildInfo.BuildCommit(),
	}, http.StatusOK)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("writing version failed")
	}
}
