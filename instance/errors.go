package instance

import "errors"

// Sentinel errors for instance parsing and construction. All are
// configuration errors: fatal at the point of discovery, never recovered
// from internally.
var (
	// ErrMalformedHeader indicates the first line did not parse as four
	// non-negative integers "m Sigma p r".
	ErrMalformedHeader = errors.New("instance: malformed header line")

	// ErrMalformedLine indicates a string line did not parse as "length token".
	ErrMalformedLine = errors.New("instance: malformed string line")

	// ErrLengthMismatch indicates a line's declared length did not match the
	// actual character count of its string.
	ErrLengthMismatch = errors.New("instance: declared length does not match string")

	// ErrTooFewLines indicates fewer than m+p+r string lines followed the header.
	ErrTooFewLines = errors.New("instance: fewer string lines than m+p+r")

	// ErrEmptyAntiPattern indicates some R[k] is the empty string, which is
	// trivially embedded as a subsequence of anything and therefore makes
	// the instance unsolvable by construction.
	ErrEmptyAntiPattern = errors.New("instance: anti-pattern string must not be empty")
)
