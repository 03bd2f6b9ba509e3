package repository

import "errors"

var (
	ErrMissingScope    = errors.New("search requires a scope")
	ErrFailedToSearch  = errors.New("failed to search amenities")
	ErrFailedToList    = errors.New("failed to list amenities")
	ErrFailedToUpsert  = errors.New("failed to upsert amenities")
	ErrFailedToUpdate  = errors.New("failed to update amenity status")
	ErrFailedToMigrate = errors.New("failed to prepare amenity index")
)
