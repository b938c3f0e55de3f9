package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isValidPawnMovement checks a pawn move against the board: one square
// forward onto an empty square, two from the starting rank over empty
// squares, or one diagonal step onto an opposing piece or en passant.
func (b *Board) isValidPawnMovement(p *chess.Piece, dest chess.Position) bool {
	if !chess.WithinBounds(dest) {
		return false
	}
	forward := (dest.Rank - p.Pos.Rank) * chess.ColourOffset(p.Colour)
	sideways := chess.ManhattanDistance(p.Pos, dest).File
	target := b.cells.At(dest).Piece

	switch {
	case sideways == 0 && forward == 1:
		return target == nil

	case sideways == 0 && forward == 2:
		if p.Pos.Rank != chess.PawnStartRank(p.Colour) {
			return false
		}
		return target == nil && b.isPathEmpty(p.Pos, dest)

	case sideways == 1 && forward == 1:
		if target != nil {
			return target.Colour != p.Colour
		}
		return b.isEnPassant(p, dest)
	}

	return false
}

// isEnPassant reports whether moving pawn p diagonally to dest captures en
// passant: the last move was an opposing pawn's two-square advance that
// ended beside p on dest's file.
func (b *Board) isEnPassant(p *chess.Piece, dest chess.Position) bool {
	return b.enPassantVictim(p, dest) != nil
}

// enPassantVictim returns the pawn that an en passant capture by p onto dest
// would remove, or nil if the move is not an en passant capture.
func (b *Board) enPassantVictim(p *chess.Piece, dest chess.Position) *chess.Piece {
	if p.Kind != chess.Pawn || b.lastMove == nil {
		return nil
	}
	last := *b.lastMove
	if chess.ManhattanDistance(last.From, last.To) != chess.Pos(2, 0) {
		return nil
	}
	if last.To.Rank != p.Pos.Rank || last.To.File != dest.File {
		return nil
	}
	forward := (dest.Rank - p.Pos.Rank) * chess.ColourOffset(p.Colour)
	if forward != 1 || chess.ManhattanDistance(p.Pos, dest).File != 1 || b.cells.At(dest).Piece != nil {
		return nil
	}
	victim := b.cells.At(last.To).Piece
	if victim == nil || victim.Kind != chess.Pawn || victim.Colour == p.Colour {
		return nil
	}
	return victim
}
