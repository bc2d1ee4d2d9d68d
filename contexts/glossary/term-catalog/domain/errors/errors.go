package errors

import "errors"

var (
	ErrTermRequired      = errors.New("term is required")
	ErrTermNotFound      = errors.New("term not found")
	ErrCandidateNotFound = errors.New("definition candidate not found")
	ErrNoCandidates      = errors.New("term has no definition candidates")

	// ErrDuplicateCandidateID guards candidate id uniqueness across the
	// whole store, not just within a term.
	ErrDuplicateCandidateID = errors.New("candidate id already in use")
)
