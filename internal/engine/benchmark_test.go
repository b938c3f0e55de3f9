package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":  testutil.InitialFEN,
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  complexFEN,
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := newTestBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.LegalMoves(board.ToMove())
			}
		})
	}
}

func BenchmarkFindThreats(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := newTestBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.FindThreats()
			}
		})
	}
}

func BenchmarkCheckMove(b *testing.B) {
	board := newTestBoard(b, benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Knight e5 takes f7.
		board.CheckMove(4, 3, 5, 1, board.ToMove())
	}
}

func BenchmarkRandomGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		board := NewGame(testutil.QuietConfig(int64(i)))
		for ply := 0; ply < 200 && !board.Outcome().Over(); ply++ {
			if _, err := board.MakeRandomMove(board.ToMove()); err != nil {
				break
			}
		}
	}
}
