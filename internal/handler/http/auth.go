package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

const (
	usernameField = "username"
	passwordField = "password"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, r.FormValue(usernameField), r.FormValue(passwordField))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Info().Msg("login already exists")
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
		}
		utils.SeeOther(w, r, registerPath)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.SeeOther(w, r, loginPath)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	foundUser, err := h.services.AuthService.Login(ctx, r.FormValue(usernameField), r.FormValue(passwordField))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Info().Msg("invalid login/password")
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
		}
		utils.SeeOther(w, r, loginPath)
		return
	}

	// a fresh login starts with nothing selected
	state := models.SessionState{
		Authenticated: true,
		UserID:        foundUser.UserID,
	}
	if err := h.sessions.Save(w, state); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("saving session failed")
		utils.SeeOther(w, r, loginPath)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.SeeOther(w, r, journalPath)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	utils.SeeOther(w, r, loginPath)
}
