package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// randomGame plays up to plies random moves and returns them.
func randomGame(t *testing.T, seed int64, plies int) ([]chess.Move, *Board) {
	t.Helper()
	b := NewGame(testutil.QuietConfig(seed))
	var moves []chess.Move
	for i := 0; i < plies && !b.Outcome().Over(); i++ {
		m, err := b.MakeRandomMove(b.ToMove())
		if err != nil {
			testutil.AssertErrorIs(t, err, chesserrors.ErrNoLegalMoves, "ply %d", i)
			break
		}
		moves = append(moves, m)
	}
	return moves, b
}

func TestMakeRandomMove_Reproducible(t *testing.T) {
	first, _ := randomGame(t, 42, 60)
	second, _ := randomGame(t, 42, 60)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed gave different games (-first +second):\n%s", diff)
	}

	other, _ := randomGame(t, 43, 60)
	if cmp.Equal(first, other) {
		t.Error("different seeds gave the same 60-ply game")
	}
}

func TestMakeRandomMove_IsLegalAndCommitted(t *testing.T) {
	b := NewGame(testutil.QuietConfig(7))
	for i := 0; i < 40 && !b.Outcome().Over(); i++ {
		colour := b.ToMove()
		legal := b.LegalMoves(colour)
		turn := b.Turn()

		m, err := b.MakeRandomMove(colour)
		if err != nil {
			t.Fatalf("ply %d: MakeRandomMove() error: %v", i, err)
		}
		found := false
		for _, l := range legal {
			if l == m {
				found = true
			}
		}
		if !found {
			t.Fatalf("ply %d: random move %v is not among the legal moves %v", i, m, legal)
		}
		testutil.AssertEqual(t, b.Turn(), turn+1, "turn after ply %d", i)
		prev, _ := b.PrevMove()
		testutil.AssertEqual(t, prev, m, "last move after ply %d", i)
	}
}

func TestMakeRandomMove_NoLegalMoves(t *testing.T) {
	b := newTestBoard(t, "k7/8/1Q6/8/8/8/8/4K3 b - - 0 1")
	_, err := b.MakeRandomMove(chess.Black)
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoLegalMoves)
	testutil.AssertEqual(t, b.History().Len(), 1, "nothing recorded")
}

func TestMakeRandomMove_Promotes(t *testing.T) {
	// Every pawn move lands on the promotion rank.
	const fen = "1n2k3/P7/8/8/8/8/8/K7 w - - 0 1"

	var pawnMoved bool
	for seed := int64(0); seed < 20 && !pawnMoved; seed++ {
		b := newTestBoard(t, fen)
		b.rng.Seed(seed)
		m, err := b.MakeRandomMove(chess.White)
		if err != nil {
			t.Fatalf("seed %d: MakeRandomMove() error: %v", seed, err)
		}
		if m.From != chess.Pos(1, 0) {
			continue
		}
		pawnMoved = true
		p := b.PieceAt(m.To.File, m.To.Rank)
		if p == nil || !p.Kind.IsPromotionTarget() || p.Colour != chess.White {
			t.Errorf("seed %d: pawn reached %v as %v, want a promoted white piece", seed, m.To, p)
		}
	}
	testutil.AssertTrue(t, pawnMoved, "no seed moved the pawn")
}

func TestRandomGames_RunToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		moves, b := randomGame(t, seed, 400)
		if len(moves) == 0 {
			t.Errorf("seed %d: no moves played", seed)
		}
		testutil.AssertEqual(t, b.History().Len(), len(moves)+1, "seed %d history", seed)
	}
}
