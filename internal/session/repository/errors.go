package repository

import "errors"

var (
	ErrVersionConflict = errors.New("session version conflict")
	ErrFailedToLoad    = errors.New("failed to load session")
	ErrFailedToSave    = errors.New("failed to save session")
	ErrFailedToDelete  = errors.New("failed to delete session")
)
