package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CanMovePiece reports whether colour may move the piece on the source
// square to the destination.
func (b *Board) CanMovePiece(srcFile, srcRank, destFile, destRank int, colour chess.Colour) bool {
	return b.CheckMove(srcFile, srcRank, destFile, destRank, colour) == nil
}

// CheckMove validates a move and returns nil if it is legal. A rejected
// move yields a *errors.MoveError wrapping the first rule it breaks, in
// this order: the game is over, a square is off the board, the source is
// empty, the piece belongs to the opponent, source and destination are the
// same, the piece cannot reach the destination, the move exposes the king.
// Rejections are logged at verbosity 2.
func (b *Board) CheckMove(srcFile, srcRank, destFile, destRank int, colour chess.Colour) error {
	src, dest := chess.Pos(srcRank, srcFile), chess.Pos(destRank, destFile)
	var err error
	switch {
	case b.outcome.Over():
		err = b.moveError(errors.ErrGameOver, src, dest, colour)
	case !chess.WithinBounds(src) || !chess.WithinBounds(dest):
		err = b.moveError(errors.ErrOffBoard, src, dest, colour)
	default:
		err = b.legal(src, dest, colour)
	}
	if err != nil {
		b.logf(2, "Illegal move: %v", err)
	}
	return err
}

// legal applies the per-move rules to an on-board move without logging.
func (b *Board) legal(src, dest chess.Position, colour chess.Colour) error {
	p := b.cells.At(src).Piece
	switch {
	case p == nil:
		return b.moveError(errors.ErrNoPiece, src, dest, colour)
	case p.Colour != colour:
		return b.moveError(errors.ErrWrongColour, src, dest, colour)
	case src == dest:
		return b.moveError(errors.ErrSameSquare, src, dest, colour)
	case !b.CanReachDestination(p, dest):
		return b.moveError(errors.ErrUnreachable, src, dest, colour)
	case b.CanThreatenKing(src.Rank, src.File, dest.Rank, dest.File):
		return b.moveError(errors.ErrKingExposed, src, dest, colour)
	}
	return nil
}

// moveError builds the rejection for a move.
func (b *Board) moveError(err error, src, dest chess.Position, colour chess.Colour) *errors.MoveError {
	e := &errors.MoveError{
		Err:    err,
		Turn:   b.turn,
		Colour: colour.String(),
		From:   src.String(),
		To:     dest.String(),
	}
	if chess.WithinBounds(src) {
		if p := b.cells.At(src).Piece; p != nil {
			e.Piece = p.String()
		}
	}
	return e
}

// candidateMoves returns the destinations worth trying for a piece: its
// candidate moves plus the castling squares for a king on its home square.
func (b *Board) candidateMoves(p *chess.Piece) []chess.Position {
	moves := b.AllMoves(p)
	if p.Kind == chess.King && !p.HasMoved && p.Pos == chess.Pos(chess.HomeRank(p.Colour), chess.KingFile) {
		moves = append(moves,
			chess.Pos(p.Pos.Rank, p.Pos.File-2),
			chess.Pos(p.Pos.Rank, p.Pos.File+2))
	}
	return moves
}

// HasLegalMoves reports whether colour has at least one legal move.
func (b *Board) HasLegalMoves(colour chess.Colour) bool {
	for _, p := range b.pieces {
		if p.Colour != colour {
			continue
		}
		for _, dest := range b.candidateMoves(p) {
			if b.legal(p.Pos, dest, colour) == nil {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move of colour, grouped by piece in
// registry order.
func (b *Board) LegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, p := range b.pieces {
		if p.Colour != colour {
			continue
		}
		for _, dest := range b.candidateMoves(p) {
			if b.legal(p.Pos, dest, colour) == nil {
				moves = append(moves, chess.Move{From: p.Pos, To: dest})
			}
		}
	}
	return moves
}
