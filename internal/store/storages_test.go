package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "journal.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "oracle"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", sqliteDSN("a.db"))
	assert.Equal(t, "a.db?cache=shared&_foreign_keys=on", sqliteDSN("a.db?cache=shared"))
	assert.Equal(t, "a.db?_fk=1", sqliteDSN("a.db?_fk=1"))
}

func TestSQLite_DuplicateUsername(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	found, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", found.PasswordHash)
}

func TestSQLite_JournalIsScopedByOwner(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	bob, err := s.UserRepository.CreateUser(ctx, models.User{Username: "bob", PasswordHash: "h"})
	require.NoError(t, err)

	first, err := s.JournalRepository.CreateEntry(ctx, models.JournalEntry{UserID: alice.UserID, Title: "Day 1", Text: "Hello"})
	require.NoError(t, err)
	_, err = s.JournalRepository.CreateEntry(ctx, models.JournalEntry{UserID: bob.UserID, Title: "Bob", Text: "Secret"})
	require.NoError(t, err)
	second, err := s.JournalRepository.CreateEntry(ctx, models.JournalEntry{UserID: alice.UserID, Title: "Day 2", Text: "Again"})
	require.NoError(t, err)

	entries, err := s.JournalRepository.ListEntries(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	for _, e := range entries {
		assert.Equal(t, alice.UserID, e.UserID)
	}

	// bob cannot touch alice's rows
	assert.ErrorIs(t, s.JournalRepository.DeleteEntry(ctx, bob.UserID, first.ID), ErrEntryNotFound)
	assert.ErrorIs(t, s.JournalRepository.UpdateEntry(ctx, models.JournalEntry{ID: first.ID, UserID: bob.UserID, Title: "x"}), ErrEntryNotFound)
	_, err = s.JournalRepository.GetEntry(ctx, bob.UserID, first.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	found, err := s.JournalRepository.FindEntryByContent(ctx, alice.UserID, "Day 1", "Hello")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	require.NoError(t, s.JournalRepository.UpdateEntry(ctx, models.JournalEntry{ID: first.ID, UserID: alice.UserID, Title: "Day 1 v2", Text: "Hello"}))
	updated, err := s.JournalRepository.GetEntry(ctx, alice.UserID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Day 1 v2", updated.Title)
	assert.Equal(t, alice.UserID, updated.UserID)

	require.NoError(t, s.JournalRepository.DeleteEntry(ctx, alice.UserID, first.ID))
	entries, err = s.JournalRepository.ListEntries(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)
}
