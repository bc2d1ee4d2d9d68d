package workers

import (
	"context"
	"log/slog"
	"time"

	application "termbank/contexts/glossary/review-queue/application"
	"termbank/contexts/glossary/review-queue/ports"
)

// FlagSignalRelay publishes recorded flag signals to the event bus so
// moderation tooling can pick them up out of band. Signals are marked
// relayed only after a successful publish; the relay stops on the first
// failure so the next cycle can safely reprocess the remainder.
type FlagSignalRelay struct {
	Flags     ports.FlagRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	BatchSize int
	Logger    *slog.Logger
}

func (r FlagSignalRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Flags.ListPendingFlagSignals(ctx, limit)
	if err != nil {
		logger.Error("flag relay list failed",
			"event", "review_flag_relay_list_failed",
			"module", "glossary/review-queue",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if len(pending) == 0 {
		logger.Debug("flag relay found no pending signals",
			"event", "review_flag_relay_noop",
			"module", "glossary/review-queue",
			"layer", "worker",
		)
		return nil
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, signal := range pending {
		eventID := signal.SignalID
		if r.IDGen != nil {
			if id, err := r.IDGen.NewID(ctx); err == nil {
				eventID = id
			}
		}
		event := ports.FlagEvent{
			EventID:     eventID,
			SignalID:    signal.SignalID,
			CandidateID: signal.CandidateID,
			TermSlug:    signal.TermSlug,
			ReporterID:  signal.ReporterID,
			Reason:      signal.Reason,
			OccurredAt:  signal.CreatedAt,
		}
		if err := r.Publisher.Publish(ctx, ports.FlagTopic, event); err != nil {
			logger.Error("flag relay publish failed",
				"event", "review_flag_relay_publish_failed",
				"module", "glossary/review-queue",
				"layer", "worker",
				"signal_id", signal.SignalID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Flags.MarkFlagSignalRelayed(ctx, signal.SignalID, now); err != nil {
			logger.Error("flag relay mark failed",
				"event", "review_flag_relay_mark_failed",
				"module", "glossary/review-queue",
				"layer", "worker",
				"signal_id", signal.SignalID,
				"error", err.Error(),
			)
			return err
		}
		logger.Info("flag signal relayed",
			"event", "review_flag_relayed",
			"module", "glossary/review-queue",
			"layer", "worker",
			"signal_id", signal.SignalID,
			"candidate_id", signal.CandidateID,
			"term_slug", signal.TermSlug,
		)
	}
	return nil
}
