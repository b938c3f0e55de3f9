package history

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Replay is a cursor over a history. It only moves one snapshot at a time.
type Replay struct {
	history *GameHistory
	index   int
}

// NewReplay creates a cursor positioned on the first snapshot.
func NewReplay(h *GameHistory) *Replay {
	return &Replay{history: h}
}

// Position returns the index of the snapshot under the cursor.
func (r *Replay) Position() int {
	return r.index
}

// Current returns the snapshot under the cursor.
func (r *Replay) Current() (Snapshot, error) {
	s, ok := r.history.at(r.index)
	if !ok {
		return Snapshot{}, fmt.Errorf("empty history: %w", errors.ErrHistoryBounds)
	}
	return s, nil
}

// Next advances the cursor and returns the new snapshot. At the end of the
// history it fails and the cursor stays where it was.
func (r *Replay) Next() (Snapshot, error) {
	s, ok := r.history.at(r.index + 1)
	if !ok {
		return Snapshot{}, fmt.Errorf("no state after %d: %w", r.index, errors.ErrHistoryBounds)
	}
	r.index++
	return s, nil
}

// Previous moves the cursor back and returns the new snapshot. At the start
// of the history it fails and the cursor stays where it was.
func (r *Replay) Previous() (Snapshot, error) {
	s, ok := r.history.at(r.index - 1)
	if !ok {
		return Snapshot{}, fmt.Errorf("no state before %d: %w", r.index, errors.ErrHistoryBounds)
	}
	r.index--
	return s, nil
}
