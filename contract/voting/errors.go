package voting

import "errors"

var (
	// ErrInvalidName rejects empty or over-long DAO names.
	ErrInvalidName = errors.New("dao name must be 1-32 characters")
	// ErrInvalidMetadata rejects over-long proposal metadata.
	ErrInvalidMetadata = errors.New("proposal metadata must be 1-50 characters")
	// ErrInvalidVoteType rejects anything but yes or no.
	ErrInvalidVoteType = errors.New("vote type must be yes or no")
	// ErrNoVoteCredits rejects voters holding no governance tokens.
	ErrNoVoteCredits = errors.New("no governance tokens to vote with")
)
