package concierge

import "errors"

var (
	ErrEmptySessionID  = errors.New("session id is required")
	ErrMissingLocation = errors.New("a new session requires an initial location")
	ErrUnknownScope    = errors.New("unknown location code")
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionConflict means another writer saved the session first. Retry the turn.
	ErrSessionConflict = errors.New("session was modified concurrently")
	ErrRetrievalFailed = errors.New("amenity retrieval failed")
	ErrLookupFailed    = errors.New("flight lookup failed")
)
