package models

// SessionState is the per-browser state carried between requests.
// It replaces any process-wide notion of "current user" or "current entry".
type SessionState struct {
	// Authenticated is set after a successful login.
	Authenticated bool

	// UserID is the id of the logged-in user.
	UserID int64

	// SelectedEntryID is the entry shown, edited or deleted next.
	// Zero means nothing is selected.
	SelectedEntryID int64

	// EditMode renders the selected entry as an editable form.
	EditMode bool
}

// Anonymous returns a fresh unauthenticated state.
func Anonymous() SessionState {
	return SessionState{}
}
