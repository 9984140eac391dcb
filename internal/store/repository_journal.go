package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

const journalTable = "journal_items"

var journalColumns = []string{"id", "user_id", "title", "text"}

// journalRepository is the SQL implementation of [JournalRepository] over
// the "journal_items" table. Reads and writes always filter by user_id and
// every mutation is one statement keyed by (id, user_id).
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

// ListEntries returns every entry owned by userID ordered by ascending id.
// An empty slice is returned when the user has no entries.
func (j *journalRepository) ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := j.builder.
		Select(journalColumns...).
		From(journalTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.ListEntries").
			Stringer("error_class", j.classify(err)).
			Int64("user_id", userID).
			Msg("failed to execute query for listing journal entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, 16)
	for rows.Next() {
		var entry models.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Text); err != nil {
			log.Err(err).
				Str("func", "journalRepository.ListEntries").
				Int64("user_id", userID).
				Msg("failed to scan journal entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "journalRepository.ListEntries").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// GetEntry returns the entry with entryID if it belongs to userID.
func (j *journalRepository) GetEntry(ctx context.Context, userID, entryID int64) (models.JournalEntry, error) {
	q := j.builder.
		Select(journalColumns...).
		From(journalTable).
		Where(squirrel.Eq{"id": entryID}).
		Where(squirrel.Eq{"user_id": userID})

	return j.getOne(ctx, "journalRepository.GetEntry", q)
}

// FindEntryByContent returns the user's entry with exactly this title and
// text. When several entries match, the oldest (lowest id) wins.
func (j *journalRepository) FindEntryByContent(ctx context.Context, userID int64, title, text string) (models.JournalEntry, error) {
	q := j.builder.
		Select(journalColumns...).
		From(journalTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"title": title}).
		Where(squirrel.Eq{"text": text}).
		OrderBy("id ASC").
		Limit(1)

	return j.getOne(ctx, "journalRepository.FindEntryByContent", q)
}

func (j *journalRepository) getOne(ctx context.Context, funcName string, q squirrel.SelectBuilder) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.JournalEntry
	err = j.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Text)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.JournalEntry{}, ErrEntryNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Stringer("error_class", j.classify(err)).Msg("failed to fetch journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// CreateEntry inserts entry under entry.UserID and returns the stored row.
func (j *journalRepository) CreateEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := j.builder.
		Insert(journalTable).
		Columns("user_id", "title", "text").
		Values(entry.UserID, entry.Title, entry.Text).
		Suffix("RETURNING id, user_id, title, text").
		ToSql()
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.JournalEntry
	err = j.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.UserID, &created.Title, &created.Text)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.CreateEntry").
			Stringer("error_class", j.classify(err)).
			Int64("user_id", entry.UserID).
			Msg("failed to insert journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateEntry replaces title and text of the entry identified by
// (entry.ID, entry.UserID). The id and owner never change.
func (j *journalRepository) UpdateEntry(ctx context.Context, entry models.JournalEntry) error {
	q := j.builder.
		Update(journalTable).
		Set("title", entry.Title).
		Set("text", entry.Text).
		Where(squirrel.Eq{"id": entry.ID}).
		Where(squirrel.Eq{"user_id": entry.UserID})

	return j.execOne(ctx, "journalRepository.UpdateEntry", q)
}

// DeleteEntry removes the entry identified by (entryID, userID).
func (j *journalRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	q := j.builder.
		Delete(journalTable).
		Where(squirrel.Eq{"id": entryID}).
		Where(squirrel.Eq{"user_id": userID})

	return j.execOne(ctx, "journalRepository.DeleteEntry", q)
}

// execOne runs a single DML statement and reports [ErrEntryNotFound] when
// it touched no row.
func (j *journalRepository) execOne(ctx context.Context, funcName string, q squirrel.Sqlizer) error {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := j.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Stringer("error_class", j.classify(err)).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
