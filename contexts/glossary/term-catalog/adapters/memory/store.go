package memory

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	contriberrors "termbank/contexts/glossary/contribution-service/domain/errors"
	contribports "termbank/contexts/glossary/contribution-service/ports"
	reviewerrors "termbank/contexts/glossary/review-queue/domain/errors"
	reviewports "termbank/contexts/glossary/review-queue/ports"
	"termbank/contexts/glossary/term-catalog/domain/entities"
	domainerrors "termbank/contexts/glossary/term-catalog/domain/errors"
	"termbank/contexts/glossary/term-catalog/ports"
)

// Store is the in-memory system of record for the whole glossary. One
// instance backs every module's ports so that reads and writes are visible
// across concurrent requests; a single RWMutex serializes the
// find-then-create upsert path and all candidate mutations. Read methods
// return copies, never internal slices.
type Store struct {
	mu sync.RWMutex

	terms     map[string]*entities.Term
	termOrder []string

	// candidateTerm maps candidate id -> owning slug; it enforces global
	// id uniqueness across terms.
	candidateTerm map[string]string

	flags     map[string]reviewports.FlagSignal
	flagOrder []string
}

func NewStore(seed []entities.Term) *Store {
	s := &Store{
		terms:         make(map[string]*entities.Term, len(seed)),
		candidateTerm: make(map[string]string),
		flags:         make(map[string]reviewports.FlagSignal),
	}
	for _, term := range seed {
		copied := cloneTerm(&term)
		s.terms[term.Slug] = &copied
		s.termOrder = append(s.termOrder, term.Slug)
		for _, candidate := range term.Candidates {
			s.candidateTerm[candidate.CandidateID] = term.Slug
		}
	}
	return s
}

// Now implements the Clock ports.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// NewID implements the IDGenerator ports.
func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) UpsertTerm(_ context.Context, displayName string, slug string, now time.Time) (entities.Term, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.terms[slug]; ok {
		return cloneTerm(existing), false, nil
	}
	term := s.registerTermLocked(displayName, slug, now)
	return cloneTerm(term), true, nil
}

func (s *Store) UpsertTermWithCandidate(
	_ context.Context,
	displayName string,
	slug string,
	candidate entities.Candidate,
	now time.Time,
) (entities.Term, entities.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	term, ok := s.terms[slug]
	if !ok {
		term = s.registerTermLocked(displayName, slug, now)
	}
	added, err := s.appendCandidateLocked(term, candidate)
	if err != nil {
		return entities.Term{}, entities.Candidate{}, err
	}
	term.UpdatedAt = now
	return cloneTerm(term), added, nil
}

func (s *Store) GetTermBySlug(_ context.Context, slug string) (entities.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term, ok := s.terms[slug]
	if !ok {
		return entities.Term{}, domainerrors.ErrTermNotFound
	}
	return cloneTerm(term), nil
}

func (s *Store) SearchTerms(_ context.Context, query string) (ports.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := ports.SearchResult{TotalTerms: len(s.termOrder)}
	query = strings.TrimSpace(query)
	if query == "" {
		return result, nil
	}
	needle := strings.ToLower(query)
	for _, slug := range s.termOrder {
		term := s.terms[slug]
		if strings.Contains(strings.ToLower(term.DisplayName), needle) {
			result.Matches = append(result.Matches, ports.TermMatch{
				Slug:        term.Slug,
				DisplayName: term.DisplayName,
			})
		}
	}
	return result, nil
}

func (s *Store) CountTerms(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.termOrder), nil
}

func (s *Store) AdjustCandidateWeight(_ context.Context, candidateID string, delta float64, now time.Time) (entities.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, _, ok := s.findCandidateLocked(candidateID)
	if !ok {
		return entities.Candidate{}, domainerrors.ErrCandidateNotFound
	}
	candidate.Weight += delta
	candidate.UpdatedAt = now
	return *candidate, nil
}

// DrawRandomCard flattens the live (term, candidate) pool and samples one
// pair uniformly. The pool is recomputed on every call so new uploads are
// immediately eligible; the O(total candidates) walk is an accepted cost
// at this scale.
func (s *Store) DrawRandomCard(_ context.Context) (reviewports.ReviewCard, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, slug := range s.termOrder {
		total += len(s.terms[slug].Candidates)
	}
	if total == 0 {
		return reviewports.ReviewCard{}, false, nil
	}

	pick := rand.IntN(total)
	for _, slug := range s.termOrder {
		term := s.terms[slug]
		if pick < len(term.Candidates) {
			return cardFromCandidate(term, term.Candidates[pick]), true, nil
		}
		pick -= len(term.Candidates)
	}
	// Unreachable: pick is always inside the flattened pool.
	return reviewports.ReviewCard{}, false, nil
}

func (s *Store) GetCard(_ context.Context, candidateID string) (reviewports.ReviewCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, term, ok := s.findCandidateLocked(candidateID)
	if !ok {
		return reviewports.ReviewCard{}, reviewerrors.ErrCandidateNotFound
	}
	return cardFromCandidate(term, *candidate), nil
}

func (s *Store) ApplyVoteDelta(_ context.Context, candidateID string, delta float64, now time.Time) (reviewports.ReviewCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, term, ok := s.findCandidateLocked(candidateID)
	if !ok {
		return reviewports.ReviewCard{}, reviewerrors.ErrCandidateNotFound
	}
	candidate.Weight += delta
	candidate.UpdatedAt = now
	return cardFromCandidate(term, *candidate), nil
}

func (s *Store) RecordFlagSignal(_ context.Context, signal reviewports.FlagSignal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.flags[signal.SignalID]; !exists {
		s.flagOrder = append(s.flagOrder, signal.SignalID)
	}
	s.flags[signal.SignalID] = signal
	return nil
}

func (s *Store) ListPendingFlagSignals(_ context.Context, limit int) ([]reviewports.FlagSignal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var pending []reviewports.FlagSignal
	for _, id := range s.flagOrder {
		signal := s.flags[id]
		if signal.Relayed {
			continue
		}
		pending = append(pending, signal)
		if limit > 0 && len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkFlagSignalRelayed(_ context.Context, signalID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	signal, ok := s.flags[signalID]
	if !ok {
		return reviewerrors.ErrFlagSignalNotFound
	}
	signal.Relayed = true
	s.flags[signalID] = signal
	return nil
}

func (s *Store) GetContribution(_ context.Context, candidateID string) (contribports.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, term, ok := s.findCandidateLocked(candidateID)
	if !ok {
		return contribports.Contribution{}, contriberrors.ErrContributionNotFound
	}
	return contributionFromCandidate(term, *candidate), nil
}

func (s *Store) ListContributionsByOwner(_ context.Context, userID string) ([]contribports.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []contribports.Contribution
	for _, slug := range s.termOrder {
		term := s.terms[slug]
		for _, candidate := range term.Candidates {
			if candidate.UserID == userID {
				out = append(out, contributionFromCandidate(term, candidate))
			}
		}
	}
	return out, nil
}

func (s *Store) TransitionContribution(
	_ context.Context,
	candidateID string,
	next entities.Status,
	now time.Time,
) (contribports.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, term, ok := s.findCandidateLocked(candidateID)
	if !ok {
		return contribports.Contribution{}, contriberrors.ErrContributionNotFound
	}
	if !next.IsValid() || !candidate.Status.CanTransitionTo(next) {
		return contribports.Contribution{}, contriberrors.ErrInvalidTransition
	}
	candidate.Status = next
	candidate.UpdatedAt = now
	return contributionFromCandidate(term, *candidate), nil
}

func (s *Store) DeleteContribution(_ context.Context, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slug, ok := s.candidateTerm[candidateID]
	if !ok {
		return contriberrors.ErrContributionNotFound
	}
	term := s.terms[slug]
	for i, candidate := range term.Candidates {
		if candidate.CandidateID == candidateID {
			term.Candidates = append(term.Candidates[:i], term.Candidates[i+1:]...)
			break
		}
	}
	delete(s.candidateTerm, candidateID)
	return nil
}

func (s *Store) registerTermLocked(displayName string, slug string, now time.Time) *entities.Term {
	term := &entities.Term{
		TermID:      uuid.NewString(),
		Slug:        slug,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.terms[slug] = term
	s.termOrder = append(s.termOrder, slug)
	return term
}

func (s *Store) appendCandidateLocked(term *entities.Term, candidate entities.Candidate) (entities.Candidate, error) {
	if _, taken := s.candidateTerm[candidate.CandidateID]; taken {
		return entities.Candidate{}, domainerrors.ErrDuplicateCandidateID
	}
	candidate.TermSlug = term.Slug
	term.Candidates = append(term.Candidates, candidate)
	s.candidateTerm[candidate.CandidateID] = term.Slug
	return candidate, nil
}

func (s *Store) findCandidateLocked(candidateID string) (*entities.Candidate, *entities.Term, bool) {
	slug, ok := s.candidateTerm[candidateID]
	if !ok {
		return nil, nil, false
	}
	term := s.terms[slug]
	for i := range term.Candidates {
		if term.Candidates[i].CandidateID == candidateID {
			return &term.Candidates[i], term, true
		}
	}
	return nil, nil, false
}

func cloneTerm(term *entities.Term) entities.Term {
	copied := *term
	copied.Candidates = make([]entities.Candidate, len(term.Candidates))
	copy(copied.Candidates, term.Candidates)
	return copied
}

func cardFromCandidate(term *entities.Term, candidate entities.Candidate) reviewports.ReviewCard {
	return reviewports.ReviewCard{
		TermSlug:    term.Slug,
		TermName:    term.DisplayName,
		CandidateID: candidate.CandidateID,
		Text:        candidate.Text,
		Source:      candidate.Source,
		Weight:      candidate.Weight,
	}
}

func contributionFromCandidate(term *entities.Term, candidate entities.Candidate) contribports.Contribution {
	return contribports.Contribution{
		CandidateID: candidate.CandidateID,
		TermSlug:    term.Slug,
		TermName:    term.DisplayName,
		Text:        candidate.Text,
		Source:      candidate.Source,
		Weight:      candidate.Weight,
		UserID:      candidate.UserID,
		Status:      candidate.Status,
		CreatedAt:   candidate.CreatedAt,
		UpdatedAt:   candidate.UpdatedAt,
	}
}
