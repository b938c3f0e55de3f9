package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MovePiece commits a move that has already passed CheckMove. En passant
// removes the passed pawn and castling relocates the rook before the mover
// leaves its square. Any captured piece leaves the registry, the mover is
// marked as moved, threats and check state are recomputed, a snapshot is
// appended and the turn advances.
func (b *Board) MovePiece(srcFile, srcRank, destFile, destRank int, colour chess.Colour) {
	src, dest := chess.Pos(srcRank, srcFile), chess.Pos(destRank, destFile)
	if !chess.WithinBounds(src) || !chess.WithinBounds(dest) {
		return
	}
	srcCell, destCell := b.cells.At(src), b.cells.At(dest)
	mover := srcCell.Piece
	if mover == nil {
		return
	}

	if victim := b.enPassantVictim(mover, dest); victim != nil {
		b.cells.At(victim.Pos).Piece = nil
		b.pieces = removePiece(b.pieces, victim)
	} else if isCastling(mover, dest) {
		b.castleRook(src, dest)
	}

	srcCell.Piece = nil
	b.pieces = removePiece(b.pieces, destCell.Piece)
	destCell.Piece = mover
	mover.Pos = dest
	mover.HasMoved = true
	b.lastMove = &chess.Move{From: src, To: dest}

	b.FindThreats()
	b.refreshStatus()

	title := fmt.Sprintf("%s's turn", colour.Opposite())
	switch {
	case b.outcome.Result == Checkmate:
		title = fmt.Sprintf("Checkmate. %s wins!", b.outcome.Winner)
		b.logf(1, "Checkmate: %s wins on turn %d", b.outcome.Winner, b.turn)
	case b.whiteInCheck || b.blackInCheck:
		b.logf(1, "Check on turn %d", b.turn)
	}
	b.history.AddState(&b.cells, b.pieces, b.turn, title, b.lastMove)
	b.turn++
}

// Play validates a move with CheckMove and commits it with MovePiece.
func (b *Board) Play(srcFile, srcRank, destFile, destRank int, colour chess.Colour) error {
	if err := b.CheckMove(srcFile, srcRank, destFile, destRank, colour); err != nil {
		return err
	}
	b.MovePiece(srcFile, srcRank, destFile, destRank, colour)
	return nil
}
