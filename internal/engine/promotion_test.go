package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const promotionFEN = "4k3/P7/8/8/8/8/7p/4K3 w - - 0 1"

func TestCheckPromotion(t *testing.T) {
	b := newTestBoard(t, promotionFEN)

	tests := []struct {
		name    string
		move    [4]int
		colour  chess.Colour
		kind    chess.PieceKind
		wantErr bool
	}{
		{"white to queen", [4]int{0, 1, 0, 0}, chess.White, chess.Queen, false},
		{"white to knight", [4]int{0, 1, 0, 0}, chess.White, chess.Knight, false},
		{"black to rook", [4]int{7, 6, 7, 7}, chess.Black, chess.Rook, false},
		{"to king", [4]int{0, 1, 0, 0}, chess.White, chess.King, true},
		{"to pawn", [4]int{0, 1, 0, 0}, chess.White, chess.Pawn, true},
		{"not a pawn", [4]int{4, 7, 4, 6}, chess.White, chess.Queen, true},
		{"empty square", [4]int{3, 3, 3, 2}, chess.White, chess.Queen, true},
		{"wrong rank", [4]int{7, 6, 7, 5}, chess.Black, chess.Queen, true},
		{"opponent's pawn", [4]int{0, 1, 0, 0}, chess.Black, chess.Queen, true},
		{"off the board", [4]int{0, 1, 0, -1}, chess.White, chess.Queen, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.CheckPromotion(tt.move[0], tt.move[1], tt.move[2], tt.move[3], tt.colour, tt.kind)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPromotion)
			} else {
				testutil.AssertNoError(t, err)
			}
			testutil.AssertEqual(t, b.CanPromote(tt.move[0], tt.move[1], tt.move[2], tt.move[3], tt.colour, tt.kind), !tt.wantErr)
		})
	}
}

func TestPromote_ThenMove(t *testing.T) {
	b := newTestBoard(t, promotionFEN)
	before := len(b.Pieces())

	if err := b.Promote(1, 0, chess.White, chess.Queen); err != nil {
		t.Fatalf("Promote() error: %v", err)
	}
	promoted := b.PieceAt(0, 1)
	if promoted == nil || promoted.Kind != chess.Queen || promoted.HasMoved {
		t.Fatalf("PieceAt(a7) = %+v, want an unmoved white queen", promoted)
	}

	found := false
	for _, p := range b.Pieces() {
		if p == promoted {
			found = true
		}
		if p.Kind == chess.Pawn && p.Colour == chess.White {
			t.Errorf("registry still holds the white pawn %v", p.Pos)
		}
	}
	testutil.AssertTrue(t, found, "queen in registry")
	testutil.AssertEqual(t, len(b.Pieces()), before, "registry size")

	if err := b.Play(0, 1, 0, 0, chess.White); err != nil {
		t.Fatalf("Play(a8) error: %v", err)
	}
	testutil.AssertEqual(t, b.CheckGameProgress(), BlackInCheck)
	testutil.AssertTrue(t, b.PieceAt(0, 0) == promoted, "queen on a8")
}

func TestPromote_UpdatesCheckState(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		rank int
		file int
		kind chess.PieceKind
		want Status
	}{
		{"rook beside the king", "k1P5/8/8/8/8/8/8/4K3 w - - 0 1", 0, 2, chess.Rook, BlackInCheck},
		{"queen along the rank", "8/1P5k/8/8/8/8/8/4K3 w - - 0 1", 1, 1, chess.Queen, BlackInCheck},
		{"knight gives no check", "8/1P5k/8/8/8/8/8/4K3 w - - 0 1", 1, 1, chess.Knight, NoChecks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.fen)
			testutil.AssertEqual(t, b.CheckGameProgress(), NoChecks, "before promotion")

			if err := b.Promote(tt.rank, tt.file, chess.White, tt.kind); err != nil {
				t.Fatalf("Promote() error: %v", err)
			}
			testutil.AssertEqual(t, b.CheckGameProgress(), tt.want)
			testutil.AssertFalse(t, b.Outcome().Over(), "promotion alone does not end the game")
		})
	}
}

func TestPromote_Rejects(t *testing.T) {
	b := newTestBoard(t, promotionFEN)
	testutil.AssertErrorIs(t, b.Promote(1, 0, chess.White, chess.King), chesserrors.ErrInvalidPromotion)
	testutil.AssertErrorIs(t, b.Promote(4, 4, chess.White, chess.Queen), chesserrors.ErrInvalidPromotion)
	testutil.AssertErrorIs(t, b.Promote(9, 0, chess.White, chess.Queen), chesserrors.ErrInvalidPromotion)
	if p := b.PieceAt(0, 1); p == nil || p.Kind != chess.Pawn {
		t.Errorf("rejected promotion changed a7 to %v", p)
	}
}
