// Package utils provides general-purpose helpers shared across the
// journal server: typed context keys, password hashing, and HTTP
// response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-journal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// request's [models.SessionState].
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying state.
func WithSession(ctx context.Context, state models.SessionState) context.Context {
	return context.WithValue(ctx, SessionCtxKey, state)
}

// GetSessionFromContext retrieves the session state from the context.
//
// Returns the state and an ok flag:
//   - ok == true : a state was stored by the session middleware
//   - ok == false: no state is present; the zero (anonymous) state is returned
func GetSessionFromContext(ctx context.Context) (models.SessionState, bool) {
	state, ok := ctx.Value(SessionCtxKey).(models.SessionState)
	return state, ok
}
