package domain

import "github.com/rotisserie/eris"

// Sentinel errors shared across layers. Callers test with errors.Is; the
// HTTP layer maps them to status codes.
var (
	// ErrNotFound means no store matches the given id.
	ErrNotFound = eris.New("store not found")

	// ErrInvalidArgument flags out-of-range pagination or radius values,
	// rejected before any storage call.
	ErrInvalidArgument = eris.New("invalid argument")

	// ErrInvalidFilter flags a filter that cannot be translated, e.g. a
	// state name that resolves to no catalog entry.
	ErrInvalidFilter = eris.New("invalid filter")

	// ErrUnknownState flags a state code with no catalog entry, surfaced
	// when a stored address is expanded for display.
	ErrUnknownState = eris.New("unknown state")

	// ErrStoresExist guards bulk import: the collection must be empty.
	ErrStoresExist = eris.New("stores already exist")

	// ErrMalformedSourceData flags feed rows that fail to parse during
	// ingestion; a single bad row aborts the whole batch.
	ErrMalformedSourceData = eris.New("malformed source data")
)
