package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "termbank/contexts/glossary/contribution-service/domain/errors"
	"termbank/contexts/glossary/contribution-service/ports"
	"termbank/contexts/glossary/term-catalog/domain/entities"
)

// Service orchestrates the per-candidate contribution lifecycle.
type Service struct {
	Repo   ports.ContributionRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Get returns a single contribution by candidate id.
func (s Service) Get(ctx context.Context, candidateID string) (ports.Contribution, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return ports.Contribution{}, domainerrors.ErrContributionNotFound
	}
	return s.Repo.GetContribution(ctx, candidateID)
}

// Submit moves a draft contribution to pending. Any other current status
// fails with ErrInvalidTransition and leaves state unchanged.
func (s Service) Submit(ctx context.Context, candidateID string) (ports.Contribution, error) {
	logger := ResolveLogger(s.Logger)
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return ports.Contribution{}, domainerrors.ErrContributionNotFound
	}
	contribution, err := s.Repo.TransitionContribution(ctx, candidateID, entities.StatusPending, s.now())
	if err != nil {
		return ports.Contribution{}, err
	}
	logger.Info("contribution submitted",
		"event", "contribution_submitted",
		"module", "glossary/contribution-service",
		"layer", "application",
		"candidate_id", candidateID,
	)
	return contribution, nil
}

// Moderate resolves a pending contribution to its terminal outcome
// (published or rejected). Non-pending contributions fail with
// ErrInvalidTransition; outcomes outside the pair fail with
// ErrInvalidOutcome.
func (s Service) Moderate(ctx context.Context, candidateID string, outcome entities.Status) (ports.Contribution, error) {
	logger := ResolveLogger(s.Logger)
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return ports.Contribution{}, domainerrors.ErrContributionNotFound
	}
	if outcome != entities.StatusPublished && outcome != entities.StatusRejected {
		return ports.Contribution{}, domainerrors.ErrInvalidOutcome
	}
	contribution, err := s.Repo.TransitionContribution(ctx, candidateID, outcome, s.now())
	if err != nil {
		return ports.Contribution{}, err
	}
	logger.Info("contribution moderated",
		"event", "contribution_moderated",
		"module", "glossary/contribution-service",
		"layer", "application",
		"candidate_id", candidateID,
		"outcome", string(outcome),
	)
	return contribution, nil
}

// ListByOwner partitions the user's contributions across all terms into
// the four status buckets. Pure projection, no mutation.
func (s Service) ListByOwner(ctx context.Context, userID string) (ports.OwnerBuckets, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ports.OwnerBuckets{}, domainerrors.ErrOwnerRequired
	}
	contributions, err := s.Repo.ListContributionsByOwner(ctx, userID)
	if err != nil {
		return ports.OwnerBuckets{}, err
	}
	var buckets ports.OwnerBuckets
	for _, contribution := range contributions {
		switch contribution.Status {
		case entities.StatusDraft:
			buckets.Drafts = append(buckets.Drafts, contribution)
		case entities.StatusPending:
			buckets.Pending = append(buckets.Pending, contribution)
		case entities.StatusPublished:
			buckets.Published = append(buckets.Published, contribution)
		case entities.StatusRejected:
			buckets.Rejected = append(buckets.Rejected, contribution)
		}
	}
	return buckets, nil
}

// Remove deletes the contribution regardless of state. No cascading side
// effects beyond the deletion itself.
func (s Service) Remove(ctx context.Context, candidateID string) error {
	logger := ResolveLogger(s.Logger)
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return domainerrors.ErrContributionNotFound
	}
	if err := s.Repo.DeleteContribution(ctx, candidateID); err != nil {
		return err
	}
	logger.Info("contribution removed",
		"event", "contribution_removed",
		"module", "glossary/contribution-service",
		"layer", "application",
		"candidate_id", candidateID,
	)
	return nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
