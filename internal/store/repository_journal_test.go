package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

var entryColumns = []string{"id", "user_id", "title", "text"}

func newTestJournalRepo(t *testing.T) (JournalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewJournalRepository(newPostgresDB(db, l), l), mock
}

func TestListEntries_ReturnsOwnRowsInOrder(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery(`SELECT id, user_id, title, text FROM journal_items WHERE user_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(1, 3, "Day 1", "Hello").
			AddRow(4, 3, "Day 2", "World"))

	entries, err := repo.ListEntries(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.JournalEntry{ID: 1, UserID: 3, Title: "Day 1", Text: "Hello"}, entries[0])
	assert.Equal(t, int64(4), entries[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntries_Empty(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM journal_items").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	entries, err := repo.ListEntries(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestListEntries_QueryError(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM journal_items").WillReturnError(errors.New("down"))

	_, err := repo.ListEntries(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListEntries_ScanError(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM journal_items").
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow("not-a-number", 3, "t", "x"))

	_, err := repo.ListEntries(context.Background(), 3)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestGetEntry(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM journal_items WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(9), int64(3)).
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(9, 3, "t", "x"))

	entry, err := repo.GetEntry(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), entry.ID)
}

func TestGetEntry_NotFound(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM journal_items").
		WithArgs(int64(9), int64(3)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := repo.GetEntry(context.Background(), 3, 9)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestFindEntryByContent(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM journal_items WHERE user_id = \$1 AND title = \$2 AND text = \$3 ORDER BY id ASC LIMIT 1`).
		WithArgs(int64(3), "Day 1", "Hello").
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(2, 3, "Day 1", "Hello"))

	entry, err := repo.FindEntryByContent(context.Background(), 3, "Day 1", "Hello")
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntry(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery(`INSERT INTO journal_items \(user_id,title,text\) VALUES \(\$1,\$2,\$3\) RETURNING id, user_id, title, text`).
		WithArgs(int64(3), "Day 1", "Hello").
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(11, 3, "Day 1", "Hello"))

	created, err := repo.CreateEntry(context.Background(), models.JournalEntry{UserID: 3, Title: "Day 1", Text: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestCreateEntry_Error(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("INSERT INTO journal_items").WillReturnError(errors.New("fk violation"))

	_, err := repo.CreateEntry(context.Background(), models.JournalEntry{UserID: 3})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateEntry(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec(`UPDATE journal_items SET title = \$1, text = \$2 WHERE id = \$3 AND user_id = \$4`).
		WithArgs("Day 1 v2", "Hello", int64(11), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateEntry(context.Background(), models.JournalEntry{ID: 11, UserID: 3, Title: "Day 1 v2", Text: "Hello"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEntry_NoRowsAffected(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec("UPDATE journal_items").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateEntry(context.Background(), models.JournalEntry{ID: 11, UserID: 4})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec(`DELETE FROM journal_items WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(11), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteEntry(context.Background(), 3, 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEntry_ExecError(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec("DELETE FROM journal_items").WillReturnError(errors.New("down"))

	err := repo.DeleteEntry(context.Background(), 3, 11)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec("DELETE FROM journal_items").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteEntry(context.Background(), 3, 11)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
