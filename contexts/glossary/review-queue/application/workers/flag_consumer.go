package workers

import (
	"context"
	"log/slog"

	application "termbank/contexts/glossary/review-queue/application"
	"termbank/contexts/glossary/review-queue/ports"
)

// DefaultConsumerGroup identifies the moderation consumer on the flag topic.
const DefaultConsumerGroup = "glossary-moderation"

// FlagSignalConsumer subscribes to the flag topic and records every relayed
// signal in the moderation journal. The handler runs on the bus goroutine;
// a journal failure is returned so the bus can surface it.
type FlagSignalConsumer struct {
	Bus           ports.EventSubscriber
	Journal       ports.ModerationJournal
	ConsumerGroup string
	Logger        *slog.Logger
}

// Start attaches the consumer to the flag topic. It returns once the
// subscription is registered; events are handled until ctx is done.
func (c FlagSignalConsumer) Start(ctx context.Context) error {
	group := c.ConsumerGroup
	if group == "" {
		group = DefaultConsumerGroup
	}
	return c.Bus.Subscribe(ctx, ports.FlagTopic, group, c.handle)
}

func (c FlagSignalConsumer) handle(ctx context.Context, event ports.FlagEvent) error {
	logger := application.ResolveLogger(c.Logger)

	if c.Journal != nil {
		if err := c.Journal.AppendFlagEvent(ctx, event); err != nil {
			logger.Error("flag journal append failed",
				"event", "review_flag_journal_failed",
				"module", "glossary/review-queue",
				"layer", "worker",
				"signal_id", event.SignalID,
				"error", err.Error(),
			)
			return err
		}
	}

	logger.Info("flag signal consumed",
		"event", "review_flag_consumed",
		"module", "glossary/review-queue",
		"layer", "worker",
		"signal_id", event.SignalID,
		"candidate_id", event.CandidateID,
		"term_slug", event.TermSlug,
		"reporter_id", event.ReporterID,
	)
	return nil
}
