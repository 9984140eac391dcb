package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
)

// journalService is the concrete implementation of JournalService.
type journalService struct {
	journalRepository store.JournalRepository

	logger *logger.Logger
}

// NewJournalService constructs a JournalService backed by journalRepository.
func NewJournalService(journalRepository store.JournalRepository, logger *logger.Logger) JournalService {
	return &journalService{
		journalRepository: journalRepository,
		logger:            logger,
	}
}

// ListEntries loads the user's entries and resolves the selection.
//
//   - no entries: the placeholder [models.EmptyJournalEntry] is shown,
//     edit mode is off and the selection is cleared.
//   - selected id not among the entries: the last (highest id) entry
//     becomes selected.
//   - otherwise the selection is kept.
func (s *journalService) ListEntries(ctx context.Context, state models.SessionState) (models.JournalView, models.SessionState, error) {
	log := logger.FromContext(ctx)

	if err := checkAuthenticated(state); err != nil {
		return models.JournalView{}, state, err
	}

	entries, err := s.journalRepository.ListEntries(ctx, state.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", state.UserID).Msg("listing journal entries failed")
		return models.JournalView{}, state, fmt.Errorf("listing journal entries failed: %w", err)
	}

	if len(entries) == 0 {
		state.SelectedEntryID = 0
		state.EditMode = false
		return models.JournalView{
			Entries:  entries,
			Selected: models.EmptyJournalEntry,
			Empty:    true,
		}, state, nil
	}

	selected, ok := findByID(entries, state.SelectedEntryID)
	if !ok {
		selected = entries[len(entries)-1]
		state.SelectedEntryID = selected.ID
	}

	return models.JournalView{
		Entries:  entries,
		Selected: selected,
		EditMode: state.EditMode,
	}, state, nil
}

// SelectEntry makes the referenced entry the selected one. On failure the
// state is returned unchanged.
func (s *journalService) SelectEntry(ctx context.Context, state models.SessionState, ref models.EntryRef) (models.SessionState, error) {
	entry, err := s.resolve(ctx, state, ref)
	if err != nil {
		return state, err
	}

	state.SelectedEntryID = entry.ID
	return state, nil
}

// CreateEntry stores a new entry for the session's user and selects it.
func (s *journalService) CreateEntry(ctx context.Context, state models.SessionState, title, text string) (models.SessionState, error) {
	log := logger.FromContext(ctx)

	if err := checkAuthenticated(state); err != nil {
		return state, err
	}

	created, err := s.journalRepository.CreateEntry(ctx, models.JournalEntry{
		UserID: state.UserID,
		Title:  title,
		Text:   text,
	})
	if err != nil {
		log.Err(err).Int64("user_id", state.UserID).Msg("creating journal entry failed")
		return state, fmt.Errorf("creating journal entry failed: %w", err)
	}

	state.SelectedEntryID = created.ID
	return state, nil
}

// StartEditing selects the referenced entry and turns edit mode on.
func (s *journalService) StartEditing(ctx context.Context, state models.SessionState, ref models.EntryRef) (models.SessionState, error) {
	entry, err := s.resolve(ctx, state, ref)
	if err != nil {
		return state, err
	}

	state.SelectedEntryID = entry.ID
	state.EditMode = true
	return state, nil
}

// CancelEditing turns edit mode off without touching the store.
func (s *journalService) CancelEditing(ctx context.Context, state models.SessionState) models.SessionState {
	state.EditMode = false
	return state
}

// FinishEditing overwrites title and text of the selected entry. Edit mode
// is turned off whether or not the update succeeds.
func (s *journalService) FinishEditing(ctx context.Context, state models.SessionState, title, text string) (models.SessionState, error) {
	log := logger.FromContext(ctx)

	state.EditMode = false

	if err := checkAuthenticated(state); err != nil {
		return state, err
	}
	if state.SelectedEntryID == 0 {
		return state, ErrNoEntrySelected
	}

	err := s.journalRepository.UpdateEntry(ctx, models.JournalEntry{
		ID:     state.SelectedEntryID,
		UserID: state.UserID,
		Title:  title,
		Text:   text,
	})
	if err != nil {
		log.Err(err).
			Int64("user_id", state.UserID).
			Int64("entry_id", state.SelectedEntryID).
			Msg("updating journal entry failed")
		return state, fmt.Errorf("updating journal entry failed: %w", err)
	}

	return state, nil
}

// DeleteEntry removes the selected entry. Edit mode is turned off whether or
// not the delete succeeds; the selection is cleared once the entry is gone.
func (s *journalService) DeleteEntry(ctx context.Context, state models.SessionState) (models.SessionState, error) {
	log := logger.FromContext(ctx)

	state.EditMode = false

	if err := checkAuthenticated(state); err != nil {
		return state, err
	}
	if state.SelectedEntryID == 0 {
		return state, ErrNoEntrySelected
	}

	err := s.journalRepository.DeleteEntry(ctx, state.UserID, state.SelectedEntryID)
	switch {
	case err == nil:
		state.SelectedEntryID = 0
		return state, nil
	case errors.Is(err, store.ErrEntryNotFound):
		// already gone, nothing left to select
		state.SelectedEntryID = 0
		return state, fmt.Errorf("deleting journal entry failed: %w", err)
	default:
		log.Err(err).
			Int64("user_id", state.UserID).
			Int64("entry_id", state.SelectedEntryID).
			Msg("deleting journal entry failed")
		return state, fmt.Errorf("deleting journal entry failed: %w", err)
	}
}

// resolve finds the referenced entry among the session user's entries,
// by id when the form sent one and by exact title and text otherwise.
func (s *journalService) resolve(ctx context.Context, state models.SessionState, ref models.EntryRef) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if err := checkAuthenticated(state); err != nil {
		return models.JournalEntry{}, err
	}

	var (
		entry models.JournalEntry
		err   error
	)
	if ref.HasID() {
		entry, err = s.journalRepository.GetEntry(ctx, state.UserID, ref.ID)
	} else {
		entry, err = s.journalRepository.FindEntryByContent(ctx, state.UserID, ref.Title, ref.Text)
	}
	if err != nil {
		log.Err(err).
			Int64("user_id", state.UserID).
			Int64("entry_id", ref.ID).
			Msg("resolving journal entry failed")
		return models.JournalEntry{}, fmt.Errorf("resolving journal entry failed: %w", err)
	}

	return entry, nil
}

func checkAuthenticated(state models.SessionState) error {
	if !state.Authenticated || state.UserID == 0 {
		return ErrUnauthenticated
	}
	return nil
}

func findByID(entries []models.JournalEntry, id int64) (models.JournalEntry, bool) {
	if id == 0 {
		return models.JournalEntry{}, false
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}
