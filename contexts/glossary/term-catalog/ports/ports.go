package ports

import (
	"context"
	"time"

	"termbank/contexts/glossary/term-catalog/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// TermMatch is one search hit: the display name plus its slug.
type TermMatch struct {
	Slug        string
	DisplayName string
}

// SearchResult carries the matches and the store-wide term count.
type SearchResult struct {
	Matches    []TermMatch
	TotalTerms int
}

// TermView is the read model for a single term page: the term with its
// candidates, the current best candidate, and the store-wide term count.
type TermView struct {
	Term       entities.Term
	Best       *entities.Candidate
	TotalTerms int
}

// TermRepository is the system of record for terms and their candidates.
// Implementations must make UpsertTerm behave as an atomic
// find-then-create per slug under concurrent calls.
type TermRepository interface {
	// UpsertTerm returns the existing term for the slug unchanged, or
	// creates and returns a new term with no candidates. created reports
	// which path was taken.
	UpsertTerm(ctx context.Context, displayName string, slug string, now time.Time) (term entities.Term, created bool, err error)

	// UpsertTermWithCandidate upserts the term and appends the candidate in
	// one atomic step, so no reader can observe the new term without its
	// first candidate.
	UpsertTermWithCandidate(ctx context.Context, displayName string, slug string, candidate entities.Candidate, now time.Time) (entities.Term, entities.Candidate, error)

	GetTermBySlug(ctx context.Context, slug string) (entities.Term, error)

	// SearchTerms matches the query case-insensitively as a substring of
	// display names. An empty query yields no matches by contract.
	SearchTerms(ctx context.Context, query string) (SearchResult, error)

	CountTerms(ctx context.Context) (int, error)

	// AdjustCandidateWeight applies delta to the candidate's weight without
	// clamping and refreshes UpdatedAt. It is the only weight mutator.
	AdjustCandidateWeight(ctx context.Context, candidateID string, delta float64, now time.Time) (entities.Candidate, error)
}
