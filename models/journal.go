package models

// JournalEntry is a single journal item owned by exactly one user.
type JournalEntry struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// TableName returns the name of the database table
// associated with the JournalEntry model.
func (e JournalEntry) TableName() string {
	return "journal_items"
}

// EntryRef identifies an entry submitted from a form. When ID is zero the
// entry is resolved by an exact Title and Text match.
type EntryRef struct {
	ID    int64
	Title string
	Text  string
}

// HasID reports whether the reference carries an explicit entry id.
func (r EntryRef) HasID() bool {
	return r.ID > 0
}

// EmptyJournalEntry is shown in place of a selection when the user has no
// entries yet.
var EmptyJournalEntry = JournalEntry{
	Title: "Add New Journal",
	Text:  "Nothing here yet...",
}
