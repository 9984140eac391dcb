package models

// JournalView is the data rendered by the journal page.
type JournalView struct {
	Entries  []JournalEntry
	Selected JournalEntry
	EditMode bool

	// Empty is true when the user has no entries and Selected holds
	// EmptyJournalEntry.
	Empty bool
}

// IsSelected reports whether entry is the currently selected one.
func (v JournalView) IsSelected(entry JournalEntry) bool {
	return !v.Empty && entry.ID == v.Selected.ID
}
