package personnel

import "errors"

// Failure taxonomy for store operations. Callers match with errors.Is; the
// presentation layer renders the message and keeps looping.
var (
	// ErrValidation covers malformed names, disallowed access levels and
	// future-dated hires.
	ErrValidation = errors.New("personnel: validation failed")

	// ErrDuplicateName signals a case-insensitive position name collision.
	ErrDuplicateName = errors.New("personnel: position name already exists")

	// ErrNotFound signals an unknown position or employee id.
	ErrNotFound = errors.New("personnel: record not found")

	// ErrReferenced blocks deleting a position that employees still hold.
	ErrReferenced = errors.New("personnel: position is held by employees")

	// ErrIO wraps persistence read/write failures. Distinct from
	// ErrNoDocument, which is the recoverable first-run case.
	ErrIO = errors.New("personnel: persistence failure")

	// ErrNoDocument is returned by a persistence collaborator when no
	// document has been written yet.
	ErrNoDocument = errors.New("personnel: no persisted document")

	// ErrSkipRecord marks a record that cannot be reconstructed during
	// restore. Load collects these and continues instead of aborting.
	ErrSkipRecord = errors.New("personnel: record skipped during restore")
)
