package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsValidMovement reports whether dest matches the movement pattern of the
// piece. Pawns and kings also consult the board: pawn captures need a
// victim, pawn pushes need empty squares, and castling has its own rules.
func (b *Board) IsValidMovement(p *chess.Piece, dest chess.Position) bool {
	if !chess.WithinBounds(dest) || dest == p.Pos {
		return false
	}
	d := chess.ManhattanDistance(p.Pos, dest)

	switch p.Kind {
	case chess.Pawn:
		return b.isValidPawnMovement(p, dest)

	case chess.Knight:
		return (d.Rank == 1 && d.File == 2) || (d.Rank == 2 && d.File == 1)

	case chess.Bishop:
		return d.Rank == d.File

	case chess.Rook:
		return d.Rank == 0 || d.File == 0

	case chess.Queen:
		return d.Rank == d.File || d.Rank == 0 || d.File == 0

	case chess.King:
		if d.Rank <= 1 && d.File <= 1 {
			return true
		}
		return b.canCastle(p, dest)
	}

	return false
}

// PathObstacle returns the first occupied square between the piece and
// dest, dest included. Knights and kings only look at dest; a pawn reports
// dest whenever its movement is invalid.
func (b *Board) PathObstacle(p *chess.Piece, dest chess.Position) (chess.Position, bool) {
	switch p.Kind {
	case chess.Pawn:
		if b.isValidPawnMovement(p, dest) {
			return chess.Position{}, false
		}
		return dest, true

	case chess.Bishop, chess.Rook, chess.Queen:
		return b.slidingObstacle(p.Pos, dest)
	}

	if b.cells.At(dest).Piece != nil {
		return dest, true
	}
	return chess.Position{}, false
}

// CanReachDestination reports whether the piece can legally travel to dest,
// ignoring whether the move would expose its own king. An obstacle is only
// acceptable when it is an opposing piece standing on dest.
func (b *Board) CanReachDestination(p *chess.Piece, dest chess.Position) bool {
	if !b.IsValidMovement(p, dest) {
		return false
	}
	obstacle, blocked := b.PathObstacle(p, dest)
	if !blocked {
		return true
	}
	if obstacle != dest {
		return false
	}
	target := b.cells.At(dest).Piece
	return target != nil && target.Colour != p.Colour
}

// AllMoves returns the candidate destinations of a piece. Sliders produce
// every empty square in each direction plus the first occupied square,
// whoever holds it. Other kinds produce every on-board square one movement
// vector away. The result is nil when there are no candidates.
func (b *Board) AllMoves(p *chess.Piece) []chess.Position {
	if p.IsSlider() {
		return b.slidingMoves(p)
	}
	return discreteMoves(p)
}

// discreteMoves returns pos+vector for each movement vector that stays on
// the board. A pawn's double push is only offered from its starting rank.
func discreteMoves(p *chess.Piece) []chess.Position {
	var moves []chess.Position
	for i, v := range chess.Directions(p.Kind, p.Colour) {
		if p.Kind == chess.Pawn && i == 0 && p.Pos.Rank != chess.PawnStartRank(p.Colour) {
			continue
		}
		if next := chess.Add(p.Pos, v); chess.WithinBounds(next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// threatenedSquares returns the squares a piece attacks or defends. Pawns
// only threaten their forward diagonals; every other kind threatens its
// candidate moves.
func (b *Board) threatenedSquares(p *chess.Piece) []chess.Position {
	if p.Kind != chess.Pawn {
		return b.AllMoves(p)
	}
	var squares []chess.Position
	for _, v := range chess.Directions(chess.Pawn, p.Colour)[2:] {
		if next := chess.Add(p.Pos, v); chess.WithinBounds(next) {
			squares = append(squares, next)
		}
	}
	return squares
}
