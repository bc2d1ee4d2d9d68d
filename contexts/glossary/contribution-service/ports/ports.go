package ports

import (
	"context"
	"time"

	"termbank/contexts/glossary/term-catalog/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// Contribution is one definition candidate viewed from its owner's side,
// carrying the owning term for display.
type Contribution struct {
	CandidateID string
	TermSlug    string
	TermName    string
	Text        string
	Source      string
	Weight      float64
	UserID      string
	Status      entities.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerBuckets partitions one user's contributions across all terms by
// status, insertion order inside each bucket.
type OwnerBuckets struct {
	Drafts    []Contribution
	Pending   []Contribution
	Published []Contribution
	Rejected  []Contribution
}

// ContributionRepository exposes lifecycle reads and mutations over the
// shared candidate store. TransitionContribution must check-and-set
// atomically so concurrent moderation calls cannot double apply.
type ContributionRepository interface {
	GetContribution(ctx context.Context, candidateID string) (Contribution, error)

	ListContributionsByOwner(ctx context.Context, userID string) ([]Contribution, error)

	// TransitionContribution moves the candidate to next only when its
	// current status permits the transition; otherwise it fails with the
	// invalid-transition sentinel and leaves state unchanged.
	TransitionContribution(ctx context.Context, candidateID string, next entities.Status, now time.Time) (Contribution, error)

	// DeleteContribution removes the candidate from its owning term
	// regardless of state. Terms are never deleted, even when their last
	// candidate goes.
	DeleteContribution(ctx context.Context, candidateID string) error
}
