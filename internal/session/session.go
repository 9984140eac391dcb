// Package session keeps per-browser state in a signed cookie.
//
// The cookie holds an HS256 JWT whose claims encode a
// [models.SessionState]. Nothing about a session is kept in server memory,
// so concurrent requests from different browsers never share state.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/models"
)

const issuer = "go-journal"

var (
	// ErrNoSession is returned by Load when the request carries no cookie.
	ErrNoSession = errors.New("no session cookie")

	// ErrInvalidSession is returned by Load when the cookie is expired,
	// tampered with or otherwise unparsable.
	ErrInvalidSession = errors.New("invalid session cookie")
)

// claims is the JWT payload of a session cookie. The subject carries the
// user id.
type claims struct {
	jwt.RegisteredClaims

	Authenticated   bool  `json:"auth"`
	SelectedEntryID int64 `json:"sel,omitempty"`
	EditMode        bool  `json:"edit,omitempty"`
}

// Manager loads and stores [models.SessionState] in a signed cookie.
type Manager struct {
	name     string
	key      []byte
	duration time.Duration
	secure   bool
	now      func() time.Time
}

// NewManager builds a Manager from the app configuration.
func NewManager(cfg config.App) *Manager {
	return &Manager{
		name:     cfg.SessionName,
		key:      []byte(cfg.SessionKey),
		duration: cfg.SessionDuration,
		secure:   cfg.SessionSecure,
		now:      time.Now,
	}
}

// Load returns the session state of r. On any error the anonymous state is
// returned alongside it.
func (m *Manager) Load(r *http.Request) (models.SessionState, error) {
	cookie, err := r.Cookie(m.name)
	if err != nil {
		return models.Anonymous(), ErrNoSession
	}

	var c claims
	_, err = jwt.ParseWithClaims(cookie.Value, &c, func(token *jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return models.Anonymous(), fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return models.Anonymous(), fmt.Errorf("%w: bad subject: %w", ErrInvalidSession, err)
	}

	return models.SessionState{
		Authenticated:   c.Authenticated,
		UserID:          userID,
		SelectedEntryID: c.SelectedEntryID,
		EditMode:        c.EditMode,
	}, nil
}

// Save signs state and sets it as the session cookie. Every save renews
// the expiry.
func (m *Manager) Save(w http.ResponseWriter, state models.SessionState) error {
	now := m.now()
	expiresAt := now.Add(m.duration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(state.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Authenticated:   state.Authenticated,
		SelectedEntryID: state.SelectedEntryID,
		EditMode:        state.EditMode,
	})

	signed, err := token.SignedString(m.key)
	if err != nil {
		return fmt.Errorf("error signing session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(m.duration.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear removes the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
