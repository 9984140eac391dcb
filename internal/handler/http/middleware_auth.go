package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/session"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

// auth is the session gate in front of every journal route.
//
// It loads the session from the request cookie. An authenticated session is
// stored in the request context under [utils.SessionCtxKey] and the request
// proceeds; anything else (no cookie, an expired or tampered cookie, or a
// session that never logged in) is redirected to the login page with
// 303 See Other.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		state, err := h.sessions.Load(r)
		if err != nil && !errors.Is(err, session.ErrNoSession) {
			log.Err(err).Msg("session cookie rejected")
		}

		if !state.Authenticated || state.UserID == 0 {
			log.Debug().Str("uri", r.RequestURI).Msg("unauthenticated request redirected to login")
			utils.SeeOther(w, r, loginPath)
			return
		}

		ctx := utils.WithSession(r.Context(), state)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest returns the state stored by auth. Handlers behind the
// gate always find one; ErrNoSessionInContext means a route was registered
// outside of it.
func sessionFromRequest(r *http.Request) (models.SessionState, error) {
	state, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return models.Anonymous(), ErrNoSessionInContext
	}
	return state, nil
}
