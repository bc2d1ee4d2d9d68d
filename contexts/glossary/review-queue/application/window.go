package application

import (
	"context"
	"sync"

	"termbank/contexts/glossary/review-queue/ports"
)

// Window holds the small fixed-size run of pending cards in front of a
// reviewer. Votes drop the front card and append one fresh draw at the
// back; when the pool is exhausted the window shrinks instead of blocking.
// Because slot refills are independent uniform draws, the same underlying
// candidate may occupy more than one slot — that is intended.
type Window struct {
	mu    sync.Mutex
	size  int
	cards []ports.ReviewCard
	src   ports.CardRepository
}

func NewWindow(size int, src ports.CardRepository) *Window {
	if size <= 0 {
		size = ports.DefaultWindowSize
	}
	return &Window{size: size, src: src}
}

// Snapshot fills the window up to its size from fresh draws and returns a
// copy of the pending cards, front first.
func (w *Window) Snapshot(ctx context.Context) ([]ports.ReviewCard, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.fillLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]ports.ReviewCard, len(w.cards))
	copy(out, w.cards)
	return out, nil
}

// Advance removes the voted card and replenishes the back with one fresh
// draw. The voted card is normally the front slot; a stale client vote on
// a deeper slot removes that slot instead so the same literal slot is
// never shown twice.
func (w *Window) Advance(ctx context.Context, votedCandidateID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	removed := false
	for i, card := range w.cards {
		if card.CandidateID == votedCandidateID {
			w.cards = append(w.cards[:i], w.cards[i+1:]...)
			removed = true
			break
		}
	}
	if !removed && len(w.cards) > 0 {
		w.cards = w.cards[1:]
	}
	return w.fillLocked(ctx)
}

func (w *Window) fillLocked(ctx context.Context) error {
	for len(w.cards) < w.size {
		card, found, err := w.src.DrawRandomCard(ctx)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		w.cards = append(w.cards, card)
	}
	return nil
}
