package workers

import (
	"context"
	"testing"
	"time"

	reviewmemory "termbank/contexts/glossary/review-queue/adapters/memory"
	"termbank/contexts/glossary/review-queue/ports"
)

type recordingBus struct {
	topic   string
	group   string
	handler func(context.Context, ports.FlagEvent) error
}

func (b *recordingBus) Subscribe(_ context.Context, topic string, consumerGroup string, handler func(context.Context, ports.FlagEvent) error) error {
	b.topic = topic
	b.group = consumerGroup
	b.handler = handler
	return nil
}

func TestFlagConsumerJournalsEvents(t *testing.T) {
	bus := &recordingBus{}
	journal := reviewmemory.NewJournal()
	consumer := FlagSignalConsumer{Bus: bus, Journal: journal}

	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if bus.topic != ports.FlagTopic {
		t.Fatalf("expected subscription on %s, got %s", ports.FlagTopic, bus.topic)
	}
	if bus.group != DefaultConsumerGroup {
		t.Fatalf("expected consumer group %s, got %s", DefaultConsumerGroup, bus.group)
	}

	now := time.Now().UTC()
	for _, id := range []string{"sig-1", "sig-2"} {
		event := ports.FlagEvent{
			EventID:     "evt-" + id,
			SignalID:    id,
			CandidateID: "c1",
			TermSlug:    "habitus",
			ReporterID:  "user-2",
			Reason:      "spam",
			OccurredAt:  now,
		}
		if err := bus.handler(context.Background(), event); err != nil {
			t.Fatalf("handle failed: %v", err)
		}
	}

	records := journal.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 journal records, got %d", len(records))
	}
	if records[0].SignalID != "sig-1" || records[1].SignalID != "sig-2" {
		t.Fatalf("expected arrival order, got %+v", records)
	}
	if records[0].TermSlug != "habitus" || records[0].ReporterID != "user-2" {
		t.Fatalf("unexpected journal record: %+v", records[0])
	}
}
