package service

import (
	"context"

	"github.com/MKhiriev/go-journal/models"
)

// AuthService registers users and verifies their credentials.
type AuthService interface {
	// RegisterUser lower-cases both inputs, hashes the password and stores
	// the user.
	RegisterUser(ctx context.Context, username, password string) (models.User, error)

	// Login lower-cases both inputs and returns the user on a matching
	// password.
	Login(ctx context.Context, username, password string) (models.User, error)
}

// JournalService implements the journal page's operations. Each method takes
// the caller's session state and returns the state to persist for the next
// request; no state is kept in the service itself.
type JournalService interface {
	ListEntries(ctx context.Context, state models.SessionState) (models.JournalView, models.SessionState, error)
	SelectEntry(ctx context.Context, state models.SessionState, ref models.EntryRef) (models.SessionState, error)
	CreateEntry(ctx context.Context, state models.SessionState, title, text string) (models.SessionState, error)
	StartEditing(ctx context.Context, state models.SessionState, ref models.EntryRef) (models.SessionState, error)
	CancelEditing(ctx context.Context, state models.SessionState) models.SessionState
	FinishEditing(ctx context.Context, state models.SessionState, title, text string) (models.SessionState, error)
	DeleteEntry(ctx context.Context, state models.SessionState) (models.SessionState, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
