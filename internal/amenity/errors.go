package amenity

import "errors"

var (
	ErrEmptySeed   = errors.New("no amenities to seed")
	ErrInvalidSeed = errors.New("amenity requires name and airport_code")
	ErrEmbedFailed = errors.New("failed to embed amenities")
	ErrMissingID   = errors.New("amenity id is required")
	ErrInvalidWait = errors.New("wait time must not be negative")
)
