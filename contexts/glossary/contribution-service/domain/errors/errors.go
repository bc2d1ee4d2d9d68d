package errors

import "errors"

var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrInvalidTransition    = errors.New("contribution status transition not allowed")
	ErrInvalidOutcome       = errors.New("moderation outcome must be published or rejected")
	ErrOwnerRequired        = errors.New("owner user id is required")
)
