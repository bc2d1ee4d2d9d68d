package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	domainerrors "termbank/contexts/glossary/review-queue/domain/errors"
	"termbank/contexts/glossary/review-queue/ports"
)

// VoteDirection is the reviewer's swipe on a card.
type VoteDirection string

const (
	VoteDirectionRaise VoteDirection = "raise"
	VoteDirectionLower VoteDirection = "lower"
)

// CastVoteCommand applies a reviewer vote to the named candidate.
type CastVoteCommand struct {
	CandidateID string
	Direction   VoteDirection
}

// FlagCandidateCommand records a hold-to-flag gesture. HoldDuration is the
// observed press length; Confirmed is the reviewer's answer to the
// secondary confirmation prompt. Releasing before the threshold or
// declining the prompt cancels the gesture without side effects.
type FlagCandidateCommand struct {
	CandidateID  string
	ReporterID   string
	Reason       string
	HoldDuration time.Duration
	Confirmed    bool
}

// FlagResult identifies the recorded moderation signal.
type FlagResult struct {
	SignalID    string
	CandidateID string
	TermSlug    string
	RecordedAt  time.Time
}

// Service drives the review-card stream: fresh random draws, the pending
// window, vote weight deltas, and flag-signal recording.
type Service struct {
	Cards             ports.CardRepository
	Flags             ports.FlagRepository
	Clock             ports.Clock
	IDGen             ports.IDGenerator
	Logger            *slog.Logger
	VoteDelta         float64
	FlagHoldThreshold time.Duration

	windowMu sync.Mutex
	window   *Window
}

// NextCard draws one fresh card uniformly over the live pool. found is
// false only when the store has no candidates at all.
func (s *Service) NextCard(ctx context.Context) (ports.ReviewCard, bool, error) {
	return s.Cards.DrawRandomCard(ctx)
}

// Queue returns the current pending window, filling it up to its size from
// fresh draws first. The window shrinks when the pool cannot fill it.
func (s *Service) Queue(ctx context.Context) ([]ports.ReviewCard, error) {
	return s.ensureWindow().Snapshot(ctx)
}

// CastVote applies the direction's weight delta to the candidate and
// advances the pending window past it: the voted card leaves the front and
// one freshly drawn card joins the back, unless the pool is exhausted.
func (s *Service) CastVote(ctx context.Context, cmd CastVoteCommand) (ports.ReviewCard, error) {
	logger := ResolveLogger(s.Logger)
	candidateID := strings.TrimSpace(cmd.CandidateID)
	if candidateID == "" {
		return ports.ReviewCard{}, domainerrors.ErrInvalidVoteInput
	}

	var delta float64
	switch cmd.Direction {
	case VoteDirectionRaise:
		delta = s.voteDelta()
	case VoteDirectionLower:
		delta = -s.voteDelta()
	default:
		return ports.ReviewCard{}, domainerrors.ErrInvalidVoteInput
	}

	card, err := s.Cards.ApplyVoteDelta(ctx, candidateID, delta, s.now())
	if err != nil {
		logger.Warn("vote rejected",
			"event", "review_vote_rejected",
			"module", "glossary/review-queue",
			"layer", "application",
			"candidate_id", candidateID,
			"error", err.Error(),
		)
		return ports.ReviewCard{}, err
	}

	if err := s.ensureWindow().Advance(ctx, candidateID); err != nil {
		return ports.ReviewCard{}, err
	}

	logger.Info("vote applied",
		"event", "review_vote_applied",
		"module", "glossary/review-queue",
		"layer", "application",
		"candidate_id", candidateID,
		"direction", string(cmd.Direction),
		"delta", delta,
		"weight", card.Weight,
	)
	return card, nil
}

// FlagCandidate records a confirmed flag as an out-of-band moderation
// signal. It verifies the candidate exists, then persists the signal for
// the relay worker; weight and status are never touched.
func (s *Service) FlagCandidate(ctx context.Context, cmd FlagCandidateCommand) (FlagResult, error) {
	logger := ResolveLogger(s.Logger)
	candidateID := strings.TrimSpace(cmd.CandidateID)
	if candidateID == "" {
		return FlagResult{}, domainerrors.ErrInvalidVoteInput
	}
	if cmd.HoldDuration < s.flagHoldThreshold() {
		return FlagResult{}, domainerrors.ErrFlagHoldTooShort
	}
	if !cmd.Confirmed {
		return FlagResult{}, domainerrors.ErrFlagNotConfirmed
	}

	card, err := s.Cards.GetCard(ctx, candidateID)
	if err != nil {
		return FlagResult{}, err
	}

	signalID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return FlagResult{}, err
	}
	now := s.now()
	signal := ports.FlagSignal{
		SignalID:     signalID,
		CandidateID:  card.CandidateID,
		TermSlug:     card.TermSlug,
		ReporterID:   strings.TrimSpace(cmd.ReporterID),
		Reason:       strings.TrimSpace(cmd.Reason),
		HoldDuration: cmd.HoldDuration,
		CreatedAt:    now,
	}
	if err := s.Flags.RecordFlagSignal(ctx, signal); err != nil {
		logger.Error("flag signal record failed",
			"event", "review_flag_record_failed",
			"module", "glossary/review-queue",
			"layer", "application",
			"candidate_id", candidateID,
			"error", err.Error(),
		)
		return FlagResult{}, err
	}

	logger.Info("flag signal recorded",
		"event", "review_flag_recorded",
		"module", "glossary/review-queue",
		"layer", "application",
		"signal_id", signalID,
		"candidate_id", card.CandidateID,
		"term_slug", card.TermSlug,
		"hold_ms", cmd.HoldDuration.Milliseconds(),
	)
	return FlagResult{
		SignalID:    signalID,
		CandidateID: card.CandidateID,
		TermSlug:    card.TermSlug,
		RecordedAt:  now,
	}, nil
}

func (s *Service) ensureWindow() *Window {
	s.windowMu.Lock()
	defer s.windowMu.Unlock()
	if s.window == nil {
		s.window = NewWindow(ports.DefaultWindowSize, s.Cards)
	}
	return s.window
}

// UseWindow swaps in a preconfigured window; bootstrap calls this when the
// window size is configured away from the default.
func (s *Service) UseWindow(window *Window) {
	s.windowMu.Lock()
	defer s.windowMu.Unlock()
	s.window = window
}

func (s *Service) voteDelta() float64 {
	if s.VoteDelta > 0 {
		return s.VoteDelta
	}
	return ports.DefaultVoteDelta
}

func (s *Service) flagHoldThreshold() time.Duration {
	if s.FlagHoldThreshold > 0 {
		return s.FlagHoldThreshold
	}
	return ports.DefaultFlagHoldThreshold
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
