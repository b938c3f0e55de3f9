package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CanPromote reports whether moving the piece on the source square to the
// destination would promote it to kind.
func (b *Board) CanPromote(srcFile, srcRank, destFile, destRank int, colour chess.Colour, kind chess.PieceKind) bool {
	return b.CheckPromotion(srcFile, srcRank, destFile, destRank, colour, kind) == nil
}

// CheckPromotion returns nil if the piece on the source square is a pawn of
// colour, the destination is on its promotion rank and kind is one of
// queen, rook, bishop or knight. Otherwise it returns an error wrapping
// errors.ErrInvalidPromotion. It does not check that the move itself is legal.
func (b *Board) CheckPromotion(srcFile, srcRank, destFile, destRank int, colour chess.Colour, kind chess.PieceKind) error {
	src := chess.Pos(srcRank, srcFile)
	if !chess.WithinBounds(src) || !chess.WithinBounds(chess.Pos(destRank, destFile)) {
		return fmt.Errorf("square off the board: %w", errors.ErrInvalidPromotion)
	}
	p := b.cells.At(src).Piece
	switch {
	case p == nil:
		return fmt.Errorf("no piece on %v: %w", src, errors.ErrInvalidPromotion)
	case p.Kind != chess.Pawn:
		return fmt.Errorf("%v is not a pawn: %w", p, errors.ErrInvalidPromotion)
	case p.Colour != colour:
		return fmt.Errorf("%v does not belong to %v: %w", p, colour, errors.ErrInvalidPromotion)
	case destRank != chess.PromotionRank(colour):
		return fmt.Errorf("rank %d is not the promotion rank: %w", destRank, errors.ErrInvalidPromotion)
	case !kind.IsPromotionTarget():
		return fmt.Errorf("cannot promote to %v: %w", kind, errors.ErrInvalidPromotion)
	}
	return nil
}

// Promote replaces the piece on the given square with a new, unmoved piece
// of kind and colour. The replacement takes the old piece's place in the
// registry. Check and checkmate are recomputed unless the game is already
// over. Callers are expected to have checked the promotion first.
func (b *Board) Promote(rank, file int, colour chess.Colour, kind chess.PieceKind) error {
	pos := chess.Pos(rank, file)
	if !kind.IsPromotionTarget() {
		return fmt.Errorf("cannot promote to %v: %w", kind, errors.ErrInvalidPromotion)
	}
	if !chess.WithinBounds(pos) || b.cells.At(pos).Piece == nil {
		return fmt.Errorf("no piece on %v: %w", pos, errors.ErrInvalidPromotion)
	}

	cell := b.cells.At(pos)
	promoted := chess.NewPiece(kind, colour, pos)
	for i, p := range b.pieces {
		if p == cell.Piece {
			b.pieces[i] = promoted
		}
	}
	cell.Piece = promoted
	b.FindThreats()
	if !b.outcome.Over() {
		b.refreshStatus()
	}
	b.logf(1, "%v promoted to %v on %v", colour, kind, pos)
	return nil
}
