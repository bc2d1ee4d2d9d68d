package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"termbank/contexts/glossary/term-catalog/domain/entities"
	domainerrors "termbank/contexts/glossary/term-catalog/domain/errors"
	"termbank/contexts/glossary/term-catalog/ports"
)

// Service orchestrates term-catalog reads and writes: lookup-or-create by
// slug, substring search, best-candidate selection, and weight adjustment.
type Service struct {
	Repo   ports.TermRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// UpsertTerm looks the term up by its computed slug and returns the
// existing entry unchanged when found, otherwise registers a new term with
// no candidates. Safe under concurrent calls for the same term; the
// repository serializes the find-then-create path.
func (s Service) UpsertTerm(ctx context.Context, displayName string) (entities.Term, error) {
	logger := ResolveLogger(s.Logger)
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return entities.Term{}, domainerrors.ErrTermRequired
	}

	slug := entities.Slugify(displayName)
	term, created, err := s.Repo.UpsertTerm(ctx, displayName, slug, s.now())
	if err != nil {
		logger.Error("term upsert failed",
			"event", "catalog_term_upsert_failed",
			"module", "glossary/term-catalog",
			"layer", "application",
			"slug", slug,
			"error", err.Error(),
		)
		return entities.Term{}, err
	}
	if created {
		logger.Info("term created",
			"event", "catalog_term_created",
			"module", "glossary/term-catalog",
			"layer", "application",
			"slug", slug,
		)
	}
	return term, nil
}

// GetTerm returns the term with its candidates in insertion order plus the
// current best candidate and the store-wide term count.
func (s Service) GetTerm(ctx context.Context, slug string) (ports.TermView, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ports.TermView{}, domainerrors.ErrTermNotFound
	}
	term, err := s.Repo.GetTermBySlug(ctx, slug)
	if err != nil {
		return ports.TermView{}, err
	}
	total, err := s.Repo.CountTerms(ctx)
	if err != nil {
		return ports.TermView{}, err
	}
	view := ports.TermView{Term: term, TotalTerms: total}
	if best, ok := entities.BestCandidate(term.Candidates); ok {
		view.Best = &best
	}
	return view, nil
}

// Search matches the query case-insensitively against display names. A
// blank query returns no matches; surfacing the whole catalog on an empty
// search box is a deliberate non-behavior, not an omission.
func (s Service) Search(ctx context.Context, query string) (ports.SearchResult, error) {
	return s.Repo.SearchTerms(ctx, strings.TrimSpace(query))
}

// BestCandidate returns the highest-weight candidate for the slug. Ties
// resolve to the first-inserted candidate.
func (s Service) BestCandidate(ctx context.Context, slug string) (entities.Candidate, error) {
	term, err := s.Repo.GetTermBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return entities.Candidate{}, err
	}
	best, ok := entities.BestCandidate(term.Candidates)
	if !ok {
		return entities.Candidate{}, domainerrors.ErrNoCandidates
	}
	return best, nil
}

// AdjustWeight applies delta to the candidate's weight. The weight is not
// clamped; callers that need bounded confidence clamp explicitly.
func (s Service) AdjustWeight(ctx context.Context, candidateID string, delta float64) (entities.Candidate, error) {
	logger := ResolveLogger(s.Logger)
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return entities.Candidate{}, domainerrors.ErrCandidateNotFound
	}
	candidate, err := s.Repo.AdjustCandidateWeight(ctx, candidateID, delta, s.now())
	if err != nil {
		return entities.Candidate{}, err
	}
	logger.Info("candidate weight adjusted",
		"event", "catalog_weight_adjusted",
		"module", "glossary/term-catalog",
		"layer", "application",
		"candidate_id", candidateID,
		"delta", delta,
		"weight", candidate.Weight,
	)
	return candidate, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
