package application

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "termbank/contexts/glossary/contribution-service/domain/errors"
	"termbank/contexts/glossary/term-catalog/adapters/memory"
	"termbank/contexts/glossary/term-catalog/domain/entities"
)

func newTestService(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore(nil)
	return Service{Repo: store, Clock: store}, store
}

func seedContribution(t *testing.T, store *memory.Store, id string, owner string, status entities.Status) {
	t.Helper()
	now := time.Now().UTC()
	candidate := entities.Candidate{
		CandidateID: id,
		Text:        "A definition long enough to be a contribution.",
		Source:      "User submission",
		Weight:      0.5,
		UserID:      owner,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, _, err := store.UpsertTermWithCandidate(context.Background(), "Habitus", "habitus", candidate, now); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestSubmitMovesDraftToPending(t *testing.T) {
	service, store := newTestService(t)
	seedContribution(t, store, "c1", "user-1", entities.StatusDraft)

	contribution, err := service.Submit(context.Background(), "c1")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if contribution.Status != entities.StatusPending {
		t.Fatalf("expected pending, got %s", contribution.Status)
	}
}

func TestSubmitNonDraftIsInvalid(t *testing.T) {
	service, store := newTestService(t)
	seedContribution(t, store, "c1", "user-1", entities.StatusPublished)

	if _, err := service.Submit(context.Background(), "c1"); !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestModerateResolvesPending(t *testing.T) {
	service, store := newTestService(t)
	seedContribution(t, store, "c1", "user-1", entities.StatusPending)
	seedContribution(t, store, "c2", "user-1", entities.StatusPending)

	published, err := service.Moderate(context.Background(), "c1", entities.StatusPublished)
	if err != nil {
		t.Fatalf("moderate publish failed: %v", err)
	}
	if published.Status != entities.StatusPublished {
		t.Fatalf("expected published, got %s", published.Status)
	}

	rejected, err := service.Moderate(context.Background(), "c2", entities.StatusRejected)
	if err != nil {
		t.Fatalf("moderate reject failed: %v", err)
	}
	if rejected.Status != entities.StatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
}

func TestModerateRejectsBadOutcome(t *testing.T) {
	service, store := newTestService(t)
	seedContribution(t, store, "c1", "user-1", entities.StatusPending)

	if _, err := service.Moderate(context.Background(), "c1", entities.StatusDraft); !errors.Is(err, domainerrors.ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
}

func TestModerateDraftIsInvalidTransition(t *testing.T) {
	service, store := newTestService(t)
	seedContribution(t, store, "c1", "user-1", entities.StatusDraft)

	if _, err := service.Moderate(context.Background(), "c1", entities.StatusPublished); !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestListByOwnerPartitionsBuckets(t *testing.T) {
	service, store := newTestService(t)
	seedContribution(t, store, "c1", "user-1", entities.StatusDraft)
	seedContribution(t, store, "c2", "user-1", entities.StatusPending)
	seedContribution(t, store, "c3", "user-1", entities.StatusPublished)
	seedContribution(t, store, "c4", "user-1", entities.StatusRejected)
	seedContribution(t, store, "c5", "user-2", entities.StatusPending)

	buckets, err := service.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(buckets.Drafts) != 1 || buckets.Drafts[0].CandidateID != "c1" {
		t.Fatalf("unexpected drafts: %+v", buckets.Drafts)
	}
	if len(buckets.Pending) != 1 || buckets.Pending[0].CandidateID != "c2" {
		t.Fatalf("unexpected pending: %+v", buckets.Pending)
	}
	if len(buckets.Published) != 1 || buckets.Published[0].CandidateID != "c3" {
		t.Fatalf("unexpected published: %+v", buckets.Published)
	}
	if len(buckets.Rejected) != 1 || buckets.Rejected[0].CandidateID != "c4" {
		t.Fatalf("unexpected rejected: %+v", buckets.Rejected)
	}
}

func TestListByOwnerRequiresOwner(t *testing.T) {
	service, _ := newTestService(t)
	if _, err := service.ListByOwner(context.Background(), "  "); !errors.Is(err, domainerrors.ErrOwnerRequired) {
		t.Fatalf("expected ErrOwnerRequired, got %v", err)
	}
}

func TestRemoveDeletesRegardlessOfState(t *testing.T) {
	service, store := newTestService(t)
	seedContribution(t, store, "c1", "user-1", entities.StatusPublished)

	if err := service.Remove(context.Background(), "c1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := service.Get(context.Background(), "c1"); !errors.Is(err, domainerrors.ErrContributionNotFound) {
		t.Fatalf("expected ErrContributionNotFound, got %v", err)
	}

	term, err := store.GetTermBySlug(context.Background(), "habitus")
	if err != nil {
		t.Fatalf("term must survive deletion: %v", err)
	}
	if len(term.Candidates) != 0 {
		t.Fatalf("expected empty term, got %d candidates", len(term.Candidates))
	}
}
