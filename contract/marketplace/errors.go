package marketplace

import "errors"

var (
	// ErrNotOwner rejects a delist from anyone but the recorded maker.
	ErrNotOwner = errors.New("not the owner of this listing")
	// ErrInvalidFee rejects fee rates above 1000 basis points (10%).
	ErrInvalidFee = errors.New("invalid marketplace fee - must be between 0 and 1000 basis points")
	// ErrInvalidName rejects empty or over-long marketplace names.
	ErrInvalidName = errors.New("marketplace name must be 1-32 characters")
	// ErrInvalidPrice rejects zero-priced listings.
	ErrInvalidPrice = errors.New("price cannot be zero")
	// ErrCollectionNotVerified rejects assets without a verified collection.
	ErrCollectionNotVerified = errors.New("collection not verified")
)
