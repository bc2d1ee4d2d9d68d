package entities

import (
	"net/url"
	"strings"
	"time"
)

// Status is the lifecycle state of a definition candidate.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is defined out of s.
func (s Status) IsTerminal() bool {
	return s == StatusPublished || s == StatusRejected
}

// CanTransitionTo reports whether the lifecycle state machine permits
// moving from s to next: draft -> pending -> {published, rejected}.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusPending
	case StatusPending:
		return next == StatusPublished || next == StatusRejected
	default:
		return false
	}
}

// Candidate is one proposed definition for a term. Weight orders candidates
// by perceived quality; it is seeded in [0,1] but adjustment deltas are not
// clamped.
type Candidate struct {
	CandidateID string
	TermSlug    string
	Text        string
	Source      string
	Weight      float64
	UserID      string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Term is a headword with its competing definition candidates in insertion
// order. Insertion order is preserved for display and tie-breaking, never
// for ranking.
type Term struct {
	TermID      string
	Slug        string
	DisplayName string
	Candidates  []Candidate
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnonymousUserID is the sentinel owner reference for candidates uploaded
// without an authenticated identity.
const AnonymousUserID = "anonymous"

// Slugify derives the normalized URL-safe identifier for a display term:
// trim, lowercase, collapse internal whitespace runs to a single hyphen,
// percent-encode. It is pure and deterministic, so the same term always
// maps to the same slug. For any produced slug,
// Slugify(unescape(slug)) == slug.
func Slugify(term string) string {
	collapsed := strings.Join(strings.Fields(strings.ToLower(term)), "-")
	return url.QueryEscape(collapsed)
}

// BestCandidate returns the candidate with the maximum weight. Ties resolve
// to the first-encountered candidate in collection order; the strict
// comparison keeps the selection stable and deterministic. ok is false when
// the set is empty.
func BestCandidate(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.Weight > best.Weight {
			best = candidate
		}
	}
	return best, true
}
