package service

import "errors"

var (
	// ErrInvalidCredentials covers an unknown username and a wrong password
	// alike, so the caller cannot tell which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned by journal operations called with a
	// session that has no logged-in user.
	ErrUnauthenticated = errors.New("session is not authenticated")

	// ErrNoEntrySelected is returned when an edit or delete is requested
	// while no entry is selected in the session.
	ErrNoEntrySelected = errors.New("no journal entry selected")
)
