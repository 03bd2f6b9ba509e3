package repository

import "errors"

var (
	ErrFailedToGet     = errors.New("failed to get flight")
	ErrFailedToUpsert  = errors.New("failed to upsert flights")
	ErrFailedToMigrate = errors.New("failed to migrate flights table")
)
