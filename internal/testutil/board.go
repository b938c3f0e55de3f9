package testutil

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// QuietConfig returns the default configuration with logging discarded
// and the given seed.
func QuietConfig(seed int64) *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	cfg.LogFile = io.Discard
	cfg.OutputFile = io.Discard
	cfg.Simulation.Seed = seed
	return cfg
}

// ParseFEN builds a grid from the placement, side-to-move and castling
// fields of a FEN string. The first placement row is rank 0. Pawns off
// their starting rank are marked as moved, and kings and rooks are marked
// as moved unless the castling field keeps them eligible.
func ParseFEN(fen string) (chess.Grid, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return chess.Grid{}, chess.White, fmt.Errorf("empty FEN string")
	}

	g := chess.NewGrid()
	rank, file := 0, 0
	for _, c := range parts[0] {
		switch {
		case c == '/':
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind, ok := chess.ParsePieceKind(byte(unicode.ToUpper(c)))
			if !ok {
				return chess.Grid{}, chess.White, fmt.Errorf("invalid piece character %q", c)
			}
			if !chess.WithinBounds(chess.Pos(rank, file)) {
				return chess.Grid{}, chess.White, fmt.Errorf("piece %q off the board", c)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			p := chess.NewPiece(kind, colour, chess.Pos(rank, file))
			p.HasMoved = kind == chess.King || kind == chess.Rook ||
				(kind == chess.Pawn && rank != chess.PawnStartRank(colour))
			g.Put(p)
			file++
		}
	}

	toMove := chess.White
	if len(parts) > 1 && parts[1] == "b" {
		toMove = chess.Black
	}
	if len(parts) > 2 {
		for _, c := range parts[2] {
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			rookFile := chess.KingsideRookFile
			if unicode.ToUpper(c) == 'Q' {
				rookFile = chess.QueensideRookFile
			}
			home := chess.HomeRank(colour)
			king := g[home][chess.KingFile].Piece
			rook := g[home][rookFile].Piece
			if king != nil && king.Kind == chess.King && rook != nil && rook.Kind == chess.Rook {
				king.HasMoved = false
				rook.HasMoved = false
			}
		}
	}
	return g, toMove, nil
}

// MustGrid parses a FEN string and fails the test on error.
func MustGrid(t testing.TB, fen string) chess.Grid {
	t.Helper()
	g, _, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return g
}

// FEN renders a grid as a full FEN string. Castling rights follow the
// HasMoved flags of kings and rooks, and the en passant square follows a
// two-square pawn advance in lastMove.
func FEN(g *chess.Grid, toMove chess.Colour, lastMove *chess.Move) string {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := g[rank][file].Piece
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Kind.Letter()
			if p.Colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(toMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(castlingRights(g))
	sb.WriteByte(' ')
	sb.WriteString(enPassantSquare(g, lastMove))
	sb.WriteString(" 0 1")
	return sb.String()
}

// castlingRights returns the FEN castling field implied by the grid.
func castlingRights(g *chess.Grid) string {
	var rights string
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		king := g[home][chess.KingFile].Piece
		if king == nil || king.Kind != chess.King || king.Colour != colour || king.HasMoved {
			continue
		}
		for _, side := range []struct {
			file   int
			letter rune
		}{{chess.KingsideRookFile, 'K'}, {chess.QueensideRookFile, 'Q'}} {
			rook := g[home][side.file].Piece
			if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
				continue
			}
			if colour == chess.Black {
				rights += string(unicode.ToLower(side.letter))
			} else {
				rights += string(side.letter)
			}
		}
	}
	if rights == "" {
		return "-"
	}
	return rights
}

// enPassantSquare returns the square skipped by a two-square pawn advance,
// or "-".
func enPassantSquare(g *chess.Grid, lastMove *chess.Move) string {
	if lastMove == nil {
		return "-"
	}
	p := g[lastMove.To.Rank][lastMove.To.File].Piece
	if p == nil || p.Kind != chess.Pawn {
		return "-"
	}
	d := lastMove.From.Rank - lastMove.To.Rank
	if d != 2 && d != -2 {
		return "-"
	}
	return SquareName(chess.Pos((lastMove.From.Rank+lastMove.To.Rank)/2, lastMove.To.File))
}

// SquareName returns the algebraic name of a position, e.g. (7,4) is "e1".
func SquareName(p chess.Position) string {
	return fmt.Sprintf("%c%d", 'a'+p.File, chess.BoardSize-p.Rank)
}
