package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/view"
)

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageIndex, nil)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageRegister, nil)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.PageLogin, nil)
}

// render executes page with content and the build version for the footer.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, content any) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	err := h.views.Render(w, page, view.PageData{
		Version: buildInfo.BuildVersion(),
		Content: content,
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("page rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
