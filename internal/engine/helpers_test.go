package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// newTestBoard returns a quiet board holding the FEN position. White is to
// move by turn parity; tests pass the moving colour explicitly.
func newTestBoard(t testing.TB, fen string) *Board {
	t.Helper()
	b := NewGame(testutil.QuietConfig(1))
	b.SetBoard(testutil.MustGrid(t, fen), nil)
	return b
}

// newTestBoardWithRule is newTestBoard with a specific checkmate rule.
func newTestBoardWithRule(t testing.TB, fen string, rule config.CheckmateRule) *Board {
	t.Helper()
	cfg := testutil.QuietConfig(1)
	cfg.Rules.Checkmate = rule
	b := NewGame(cfg)
	b.SetBoard(testutil.MustGrid(t, fen), nil)
	return b
}

// boardState is a deep, comparable copy of everything a speculative legality check
// must leave untouched.
type boardState struct {
	Cells   []chess.Cell
	Pieces  []chess.Piece
	Threats [2][chess.BoardSize][chess.BoardSize]bool
	Status  Status
}

// captureState copies the observable state of b.
func captureState(b *Board) boardState {
	g := b.Cells()
	s := boardState{Cells: g.Flatten(), Status: b.CheckGameProgress()}
	for _, p := range b.pieces {
		s.Pieces = append(s.Pieces, *p)
	}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			s.Threats[0][rank][file] = b.UnderThreat(chess.White, rank, file)
			s.Threats[1][rank][file] = b.UnderThreat(chess.Black, rank, file)
		}
	}
	return s
}

// play commits a sequence of moves given as {srcFile, srcRank, destFile,
// destRank}, alternating colours from White, and fails on the first
// illegal one.
func play(t *testing.T, b *Board, moves ...[4]int) {
	t.Helper()
	colour := b.ToMove()
	for i, m := range moves {
		if err := b.Play(m[0], m[1], m[2], m[3], colour); err != nil {
			t.Fatalf("move %d %v: %v", i, m, err)
		}
		colour = colour.Opposite()
	}
}
