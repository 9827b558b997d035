package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrValidation is a generic sentinel for malformed input. Returned before
	// any persistence attempt; no partial state change.
	ErrValidation = errors.New("invalid argument")
	// ErrIneligibleTransition is returned when a level-up does not satisfy the
	// current level's requirements, or attempts to skip or regress a level.
	// A user-facing "not ready yet" condition, not a system fault.
	ErrIneligibleTransition = errors.New("ineligible transition")
	// ErrNotEligible is returned when mastery is requested before the proofed
	// level's requirements are satisfied.
	ErrNotEligible = errors.New("not eligible")
	// ErrConcurrentModification signals an optimistic-concurrency conflict:
	// the stored proficiency level changed between evaluation and write.
	// Callers should re-evaluate and retry the decision, not resubmit blindly.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrConfiguration signals a requirement catalog entry missing for a level
	// in active use ("requirements unavailable").
	ErrConfiguration = errors.New("requirements unavailable")
	// ErrStorageUnavailable signals a transient backend failure. Retry is up
	// to the caller.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
