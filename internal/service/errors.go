package service

import "errors"

// Service operations fail with exactly one of these kinds (or an auth
// sentinel from the auth package). The two kinds are deliberately distinct:
// project lookups are ownership-opaque and collapse "missing" and "owned by
// someone else" into ErrNotFound, while task mutations report
// ErrUnauthorized when the task exists but the requester does not own its
// parent project.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
)
