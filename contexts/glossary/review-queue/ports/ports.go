package ports

import (
	"context"
	"time"
)

// FlagTopic is the bus topic carrying relayed flag signals.
const FlagTopic = "glossary.candidate.flagged"

const (
	// DefaultWindowSize is the number of pending cards kept in front of a
	// reviewer.
	DefaultWindowSize = 3

	// DefaultVoteDelta is the weight delta applied per raise/lower vote.
	DefaultVoteDelta = 0.05

	// DefaultFlagHoldThreshold is the minimum sustained hold before a flag
	// gesture may take effect. Releasing earlier cancels the gesture.
	DefaultFlagHoldThreshold = 1000 * time.Millisecond
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ReviewCard is one (term, candidate) pair presented to a reviewer.
type ReviewCard struct {
	TermSlug    string
	TermName    string
	CandidateID string
	Text        string
	Source      string
	Weight      float64
}

// CardRepository draws cards from the live candidate pool. Draws are
// independent uniform samples recomputed per call, so fresh uploads are
// immediately eligible and the same candidate may legitimately reappear.
type CardRepository interface {
	// DrawRandomCard picks uniformly over all (term, candidate) pairs.
	// found is false only when the store holds zero candidates globally.
	DrawRandomCard(ctx context.Context) (card ReviewCard, found bool, err error)

	GetCard(ctx context.Context, candidateID string) (ReviewCard, error)

	// ApplyVoteDelta adjusts the candidate weight by delta (unclamped) and
	// refreshes its UpdatedAt.
	ApplyVoteDelta(ctx context.Context, candidateID string, delta float64, now time.Time) (ReviewCard, error)
}

// FlagSignal is the out-of-band moderation record produced by a confirmed
// hold-to-flag gesture. It never mutates candidate weight or status.
type FlagSignal struct {
	SignalID     string
	CandidateID  string
	TermSlug     string
	ReporterID   string
	Reason       string
	HoldDuration time.Duration
	Relayed      bool
	CreatedAt    time.Time
}

// FlagRepository persists flag signals and tracks relay progress.
type FlagRepository interface {
	RecordFlagSignal(ctx context.Context, signal FlagSignal) error
	ListPendingFlagSignals(ctx context.Context, limit int) ([]FlagSignal, error)
	MarkFlagSignalRelayed(ctx context.Context, signalID string, now time.Time) error
}

// FlagEvent is the bus envelope for a relayed flag signal.
type FlagEvent struct {
	EventID     string
	SignalID    string
	CandidateID string
	TermSlug    string
	ReporterID  string
	Reason      string
	OccurredAt  time.Time
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event FlagEvent) error
}

type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, FlagEvent) error) error
}

// ModerationJournal records consumed flag events for moderation tooling.
type ModerationJournal interface {
	AppendFlagEvent(ctx context.Context, event FlagEvent) error
}
