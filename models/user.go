package models

// User represents a registered account.
// PasswordHash holds a bcrypt digest and is never compared in plaintext.
type User struct {
	// UserID is the server-generated identifier.
	UserID int64 `json:"-"`

	// Username is unique and stored lower-cased.
	Username string `json:"username"`

	// PasswordHash is the salted bcrypt hash of the lower-cased password.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
