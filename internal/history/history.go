// Package history records the sequence of board states of a game.
// Every committed move or no-move event appends a deep-copied snapshot;
// undo drops the newest one and a Replay walks the sequence one step at a time.
package history

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialTitle labels the snapshot taken before the first move.
const InitialTitle = "Game start!"

// Snapshot is an immutable copy of the board at one point of the game.
type Snapshot struct {
	// Board is a deep copy of the grid.
	Board chess.Grid

	// Pieces lists the live pieces in registry order. The entries point
	// at the pieces held by Board.
	Pieces []*chess.Piece

	// Turn is the turn counter at the time the snapshot was taken.
	Turn int

	// Title describes the state, e.g. "Black's turn" or "White resigns. Black wins!".
	Title string

	// LastMove is the move that produced this state, nil for the start of
	// the game and for no-move events. En passant depends on it.
	LastMove *chess.Move
}

// String renders the snapshot as text, rank 0 at the top.
func (s Snapshot) String() string {
	return fmt.Sprintf("Turn:%d %s\n%s", s.Turn, s.Title, s.Board.String())
}

// GameHistory is an append-only list of snapshots.
type GameHistory struct {
	// Name is set when the game is saved.
	Name string

	// SaveDate is stamped by SetName.
	SaveDate time.Time

	snapshots []Snapshot
}

// New creates an empty history.
func New() *GameHistory {
	return &GameHistory{}
}

// SetName names the game and stamps the save date.
func (h *GameHistory) SetName(name string) {
	h.Name = name
	h.SaveDate = time.Now()
}

// AddState deep-copies the grid and piece list and appends them as a new snapshot.
func (h *GameHistory) AddState(cells *chess.Grid, pieces []*chess.Piece, turn int, title string, lastMove *chess.Move) {
	board, list := chess.CopyState(cells, pieces)
	var last *chess.Move
	if lastMove != nil {
		m := *lastMove
		last = &m
	}
	h.snapshots = append(h.snapshots, Snapshot{
		Board:    board,
		Pieces:   list,
		Turn:     turn,
		Title:    title,
		LastMove: last,
	})
}

// Append adds an already-built snapshot. The history takes ownership of it.
func (h *GameHistory) Append(s Snapshot) {
	h.snapshots = append(h.snapshots, s)
}

// Undo discards the newest snapshot and returns the one that is now last.
// The initial state can never be undone.
func (h *GameHistory) Undo() (Snapshot, error) {
	if len(h.snapshots) < 2 {
		return Snapshot{}, fmt.Errorf("undo with %d state(s): %w", len(h.snapshots), errors.ErrHistoryBounds)
	}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return h.snapshots[len(h.snapshots)-1], nil
}

// Len returns the number of snapshots.
func (h *GameHistory) Len() int {
	return len(h.snapshots)
}

// Last returns the newest snapshot.
func (h *GameHistory) Last() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	return h.snapshots[len(h.snapshots)-1], true
}

// Snapshots returns the snapshots in order. The slice is a copy; the
// snapshots themselves must be treated as read-only.
func (h *GameHistory) Snapshots() []Snapshot {
	out := make([]Snapshot, len(h.snapshots))
	copy(out, h.snapshots)
	return out
}

// Clone returns a deep copy of the history, suitable for read-only replay.
func (h *GameHistory) Clone() *GameHistory {
	c := &GameHistory{Name: h.Name, SaveDate: h.SaveDate}
	for _, s := range h.snapshots {
		c.AddState(&s.Board, s.Pieces, s.Turn, s.Title, s.LastMove)
	}
	return c
}

// at returns the snapshot at index i.
func (h *GameHistory) at(i int) (Snapshot, bool) {
	if i < 0 || i >= len(h.snapshots) {
		return Snapshot{}, false
	}
	return h.snapshots[i], true
}
