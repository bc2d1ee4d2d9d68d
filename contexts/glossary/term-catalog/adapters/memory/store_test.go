package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	contriberrors "termbank/contexts/glossary/contribution-service/domain/errors"
	"termbank/contexts/glossary/term-catalog/domain/entities"
	domainerrors "termbank/contexts/glossary/term-catalog/domain/errors"
)

func seedCandidate(id string, weight float64, status entities.Status) entities.Candidate {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return entities.Candidate{
		CandidateID: id,
		Text:        "A definition long enough to be accepted by the length floor.",
		Source:      "User submission",
		Weight:      weight,
		UserID:      "user-1",
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUpsertTermIsIdempotentPerSlug(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()

	first, created, err := store.UpsertTerm(context.Background(), "Habitus", "habitus", now)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if !created {
		t.Fatal("expected first upsert to create the term")
	}

	second, created, err := store.UpsertTerm(context.Background(), "Habitus", "habitus", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if created {
		t.Fatal("expected second upsert to return the existing term")
	}
	if first.TermID != second.TermID {
		t.Fatalf("expected same term id, got %s and %s", first.TermID, second.TermID)
	}

	count, err := store.CountTerms(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 term, got %d", count)
	}
}

func TestConcurrentUpsertCreatesOneTerm(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := store.UpsertTerm(context.Background(), "Discourse", "discourse", now); err != nil {
				t.Errorf("upsert failed: %v", err)
			}
		}()
	}
	wg.Wait()

	count, err := store.CountTerms(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 term after concurrent upserts, got %d", count)
	}
}

func TestSearchTermsEmptyQueryReturnsNoMatches(t *testing.T) {
	store := NewStore([]entities.Term{
		{Slug: "habitus", DisplayName: "Habitus"},
		{Slug: "discourse", DisplayName: "Discourse"},
	})

	result, err := store.SearchTerms(context.Background(), "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Matches) != 0 {
		t.Fatalf("expected no matches for blank query, got %d", len(result.Matches))
	}
	if result.TotalTerms != 2 {
		t.Fatalf("expected total 2, got %d", result.TotalTerms)
	}
}

func TestSearchTermsIsCaseInsensitiveSubstring(t *testing.T) {
	store := NewStore([]entities.Term{
		{Slug: "habitus", DisplayName: "Habitus"},
		{Slug: "social-construct", DisplayName: "Social Construct"},
		{Slug: "rational-choice-theory", DisplayName: "Rational Choice Theory"},
	})

	result, err := store.SearchTerms(context.Background(), "CHOICE")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Matches) != 1 || result.Matches[0].Slug != "rational-choice-theory" {
		t.Fatalf("unexpected matches: %+v", result.Matches)
	}
}

func TestDuplicateCandidateIDRejectedAcrossTerms(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()

	if _, _, err := store.UpsertTermWithCandidate(context.Background(), "Habitus", "habitus", seedCandidate("c1", 0.5, entities.StatusPending), now); err != nil {
		t.Fatalf("first candidate failed: %v", err)
	}
	_, _, err := store.UpsertTermWithCandidate(context.Background(), "Discourse", "discourse", seedCandidate("c1", 0.5, entities.StatusPending), now)
	if !errors.Is(err, domainerrors.ErrDuplicateCandidateID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestDrawRandomCardCoversWholePool(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()
	ids := []string{"c1", "c2", "c3"}
	for i, id := range ids {
		slug := []string{"habitus", "habitus", "discourse"}[i]
		name := map[string]string{"habitus": "Habitus", "discourse": "Discourse"}[slug]
		if _, _, err := store.UpsertTermWithCandidate(context.Background(), name, slug, seedCandidate(id, 0.5, entities.StatusPending), now); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		card, found, err := store.DrawRandomCard(context.Background())
		if err != nil {
			t.Fatalf("draw failed: %v", err)
		}
		if !found {
			t.Fatal("expected a card from a non-empty pool")
		}
		seen[card.CandidateID] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Fatalf("candidate %s never drawn in 200 samples", id)
		}
	}
}

func TestDrawRandomCardEmptyPool(t *testing.T) {
	store := NewStore(nil)
	if _, _, err := store.UpsertTerm(context.Background(), "Habitus", "habitus", time.Now().UTC()); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	_, found, err := store.DrawRandomCard(context.Background())
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if found {
		t.Fatal("expected found=false when no candidates exist")
	}
}

func TestTransitionContributionGuardsStateMachine(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()
	if _, _, err := store.UpsertTermWithCandidate(context.Background(), "Habitus", "habitus", seedCandidate("c1", 0.5, entities.StatusDraft), now); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := store.TransitionContribution(context.Background(), "c1", entities.StatusPublished, now); !errors.Is(err, contriberrors.ErrInvalidTransition) {
		t.Fatalf("draft -> published must be invalid, got %v", err)
	}

	pending, err := store.TransitionContribution(context.Background(), "c1", entities.StatusPending, now)
	if err != nil {
		t.Fatalf("draft -> pending failed: %v", err)
	}
	if pending.Status != entities.StatusPending {
		t.Fatalf("expected pending, got %s", pending.Status)
	}

	published, err := store.TransitionContribution(context.Background(), "c1", entities.StatusPublished, now)
	if err != nil {
		t.Fatalf("pending -> published failed: %v", err)
	}
	if published.Status != entities.StatusPublished {
		t.Fatalf("expected published, got %s", published.Status)
	}

	if _, err := store.TransitionContribution(context.Background(), "c1", entities.StatusRejected, now); !errors.Is(err, contriberrors.ErrInvalidTransition) {
		t.Fatalf("terminal state must not transition, got %v", err)
	}
}

func TestDeleteContributionKeepsTerm(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()
	if _, _, err := store.UpsertTermWithCandidate(context.Background(), "Habitus", "habitus", seedCandidate("c1", 0.5, entities.StatusPending), now); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := store.DeleteContribution(context.Background(), "c1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteContribution(context.Background(), "c1"); !errors.Is(err, contriberrors.ErrContributionNotFound) {
		t.Fatalf("second delete must report not found, got %v", err)
	}

	term, err := store.GetTermBySlug(context.Background(), "habitus")
	if err != nil {
		t.Fatalf("term must survive candidate deletion: %v", err)
	}
	if len(term.Candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(term.Candidates))
	}
}

func TestAdjustCandidateWeightUnclamped(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()
	if _, _, err := store.UpsertTermWithCandidate(context.Background(), "Habitus", "habitus", seedCandidate("c1", 0.02, entities.StatusPending), now); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	candidate, err := store.AdjustCandidateWeight(context.Background(), "c1", -0.05, now)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if candidate.Weight >= 0 {
		t.Fatalf("expected weight below zero, got %f", candidate.Weight)
	}
}
