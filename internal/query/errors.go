package query

import "errors"

// Error kinds surfaced by the query engine.
var (
	// ErrInvalidCriteria reports malformed filter input: an unknown record
	// type, a date or amount that fails parsing, or a search term with no
	// fields to match it against. It is always returned before any store
	// access happens.
	ErrInvalidCriteria = errors.New("invalid criteria")

	// ErrStoreUnavailable reports that the underlying store could not be
	// reached or failed. The engine never retries; retry policy belongs to
	// the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)
