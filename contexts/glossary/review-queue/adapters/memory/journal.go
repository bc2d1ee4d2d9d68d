package memory

import (
	"context"
	"sync"

	"termbank/contexts/glossary/review-queue/ports"
)

// Journal is the in-process moderation journal fed by the flag consumer.
type Journal struct {
	mu      sync.RWMutex
	records []ports.FlagEvent
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) AppendFlagEvent(_ context.Context, event ports.FlagEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, event)
	return nil
}

// Records returns the journal entries in arrival order.
func (j *Journal) Records() []ports.FlagEvent {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]ports.FlagEvent, len(j.records))
	copy(out, j.records)
	return out
}
