package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestParseFEN_Initial(t *testing.T) {
	g, toMove, err := ParseFEN(InitialFEN)
	if err != nil {
		t.Fatalf("ParseFEN() error: %v", err)
	}
	if toMove != chess.White {
		t.Errorf("toMove = %v, want White", toMove)
	}

	want := chess.InitialGrid()
	AssertEqual(t, g.Flatten(), want.Flatten(), "initial grid")
}

func TestParseFEN_MovedFlags(t *testing.T) {
	g := MustGrid(t, "r3k2r/8/8/8/4P3/8/8/R3K2R b Kq - 0 1")

	tests := []struct {
		name  string
		pos   chess.Position
		moved bool
	}{
		{"white king keeps a right", chess.Pos(7, 4), false},
		{"white kingside rook", chess.Pos(7, 7), false},
		{"white queenside rook", chess.Pos(7, 0), true},
		{"black queenside rook", chess.Pos(0, 0), false},
		{"black kingside rook", chess.Pos(0, 7), true},
		{"advanced pawn", chess.Pos(4, 4), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := g.At(tt.pos).Piece
			if p == nil {
				t.Fatalf("no piece on %v", tt.pos)
			}
			if p.HasMoved != tt.moved {
				t.Errorf("HasMoved = %v, want %v", p.HasMoved, tt.moved)
			}
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	for _, fen := range []string{"", "rnbqkbnx/8/8/8/8/8/8/8 w - - 0 1", "9/8/8/8/8/8/8/8/k w - - 0 1"} {
		if _, _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) error = nil, want error", fen)
		}
	}
}

func TestFEN(t *testing.T) {
	g := chess.InitialGrid()
	AssertEqual(t, FEN(&g, chess.White, nil), InitialFEN)

	pawn := g[6][4].Piece
	g[6][4].Piece = nil
	pawn.Pos = chess.Pos(4, 4)
	pawn.HasMoved = true
	g.Put(pawn)
	g[7][7].Piece.HasMoved = true
	last := &chess.Move{From: chess.Pos(6, 4), To: chess.Pos(4, 4)}

	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b Qkq e3 0 1"
	AssertEqual(t, FEN(&g, chess.Black, last), want)
}

func TestSquareName(t *testing.T) {
	AssertEqual(t, SquareName(chess.Pos(7, 0)), "a1")
	AssertEqual(t, SquareName(chess.Pos(0, 7)), "h8")
	AssertEqual(t, SquareName(chess.Pos(4, 4)), "e4")
}
