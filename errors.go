package projector

import "errors"

var (
	// ErrMalformedLine is returned by ParseLine for lines that do not hold a
	// word followed by numeric components.
	ErrMalformedLine = errors.New("malformed line")

	// ErrNoConsistentVectors is returned when no record survives dimension
	// reconciliation.
	ErrNoConsistentVectors = errors.New("no vectors with consistent dimension")

	// ErrUnknownEncoding is returned for text encoding names that cannot be
	// resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrInvalidOptions is returned for negative limits, dimensions or
	// worker counts.
	ErrInvalidOptions = errors.New("invalid options")
)
