package locale

import "errors"

var (
	ErrFailedToParseCatalog = errors.New("failed to parse translation catalog")
	ErrFailedToReadCatalog  = errors.New("failed to read translation catalog")
	ErrEmptyCatalog         = errors.New("translation catalog has no languages")
	ErrFailedToSavePref     = errors.New("failed to save locale preference")
)
