// Package engine implements the rules of two-player chess on top of the
// types in package chess: movement and capture rules per piece kind,
// threat maps, check and checkmate, castling, en passant, promotion, and
// the turn and history bookkeeping of a single game.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/history"
)

// threatMap marks the squares a colour attacks or defends.
type threatMap [chess.BoardSize][chess.BoardSize]bool

// Board holds the state of one game. It is not safe for concurrent use;
// independent boards may be used from different goroutines.
type Board struct {
	cfg *config.Config

	cells  chess.Grid
	pieces []*chess.Piece

	threatenedByWhite threatMap
	threatenedByBlack threatMap

	whiteInCheck     bool
	blackInCheck     bool
	whiteInCheckmate bool
	blackInCheckmate bool

	lastMove *chess.Move
	turn     int
	outcome  Outcome

	history *history.GameHistory
	rng     *rand.Rand
}

// NewGame creates a board with the standard starting layout. The initial
// snapshot is recorded at turn 0 and White moves first on turn 1.
func NewGame(cfg *config.Config) *Board {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	b := &Board{
		cfg:     cfg,
		cells:   chess.InitialGrid(),
		history: history.New(),
		rng:     rand.New(rand.NewSource(cfg.Simulation.Seed)),
	}
	b.pieces = b.cells.Pieces()
	b.FindThreats()
	b.history.AddState(&b.cells, b.pieces, 0, history.InitialTitle, nil)
	b.turn = 1
	if cfg.GameName != "" {
		b.history.SetName(cfg.GameName)
	}
	return b
}

// ResumeGame creates a board that continues the game recorded in h from
// its newest snapshot. The board takes ownership of h. The outcome is
// derived from the position, so a resigned or drawn game resumes in
// progress with the side that was to move when the game was stopped.
func ResumeGame(cfg *config.Config, h *history.GameHistory) (*Board, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	snaps := h.Snapshots()
	if len(snaps) == 0 {
		return nil, errors.Wrap(errors.ErrHistoryBounds, "resume from empty history")
	}
	// No-move events leave the board as it was; resume after the last move.
	i := len(snaps) - 1
	for i > 0 && snaps[i].LastMove == nil {
		i--
	}
	snap := snaps[i]
	b := &Board{
		cfg:     cfg,
		history: h,
		rng:     rand.New(rand.NewSource(cfg.Simulation.Seed)),
	}
	b.resumeFrom(snap)
	return b, nil
}

// resumeFrom makes snap the live state: grid, registry, last move and
// the turn that follows it.
func (b *Board) resumeFrom(snap history.Snapshot) {
	b.lastMove = nil
	if snap.LastMove != nil {
		m := *snap.LastMove
		b.lastMove = &m
	}
	b.restore(&snap.Board, snap.Pieces)
	b.turn = snap.Turn + 1
}

// PieceAt returns the piece on the given square, or nil if it is empty or off the board.
func (b *Board) PieceAt(file, rank int) *chess.Piece {
	p := chess.Pos(rank, file)
	if !chess.WithinBounds(p) {
		return nil
	}
	return b.cells.At(p).Piece
}

// Turn returns the turn counter. It starts at 1 and advances after every
// committed move and every no-move event.
func (b *Board) Turn() int {
	return b.turn
}

// ToMove returns the colour whose turn it is. White moves on odd turns.
func (b *Board) ToMove() chess.Colour {
	if b.turn%2 == 1 {
		return chess.White
	}
	return chess.Black
}

// PrevMove returns the last committed move, or false if there is none.
func (b *Board) PrevMove() (chess.Move, bool) {
	if b.lastMove == nil {
		return chess.Move{}, false
	}
	return *b.lastMove, true
}

// Cells returns a deep copy of the grid.
func (b *Board) Cells() chess.Grid {
	g, _ := chess.CopyState(&b.cells, nil)
	return g
}

// Pieces returns the live pieces in registry order. The pieces are the
// board's own and must not be modified.
func (b *Board) Pieces() []*chess.Piece {
	out := make([]*chess.Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// Flatten returns the 64 cells in row-major order, rank 0 first.
func (b *Board) Flatten() []chess.Cell {
	return b.cells.Flatten()
}

// History returns the game's snapshot history.
func (b *Board) History() *history.GameHistory {
	return b.history
}

// SetBoard replaces the grid and registry with deep copies of the given
// state, then recomputes threats, check and checkmate. The registry keeps
// the order of pieces when it names every piece on the grid and falls back
// to row-major order otherwise. The last move is forgotten.
func (b *Board) SetBoard(cells chess.Grid, pieces []*chess.Piece) {
	b.lastMove = nil
	b.restore(&cells, pieces)
}

// restore installs a copy of a grid and piece list and rederives
// everything that depends on it.
func (b *Board) restore(cells *chess.Grid, pieces []*chess.Piece) {
	grid, list := chess.CopyState(cells, pieces)
	if len(list) != len(grid.Pieces()) {
		list = grid.Pieces()
	}
	b.cells = grid
	b.pieces = list
	b.FindThreats()
	b.refreshStatus()
}

// String renders the board as text, rank 0 at the top.
func (b *Board) String() string {
	return b.cells.String()
}

// logf writes a diagnostic line when the configured verbosity is at least level.
func (b *Board) logf(level int, format string, args ...interface{}) {
	if b.cfg.Verbosity < level || b.cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(b.cfg.LogFile, format+"\n", args...)
}
