package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-journal/models"
)

// UserRepository persists user accounts (the credential store).
type UserRepository interface {
	// CreateUser inserts a user and returns it with the generated id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the only user with that username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// JournalRepository persists journal entries. Every method is scoped to a
// single owner, so one user can never read or change another user's rows.
type JournalRepository interface {
	ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	GetEntry(ctx context.Context, userID, entryID int64) (models.JournalEntry, error)
	FindEntryByContent(ctx context.Context, userID int64, title, text string) (models.JournalEntry, error)
	CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	UpdateEntry(ctx context.Context, entry models.JournalEntry) error
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}
