package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// FindThreats rebuilds both threat maps from the live pieces.
func (b *Board) FindThreats() {
	b.threatenedByWhite = threatMap{}
	b.threatenedByBlack = threatMap{}
	for _, p := range b.pieces {
		m := &b.threatenedByBlack
		if p.Colour == chess.White {
			m = &b.threatenedByWhite
		}
		for _, sq := range b.threatenedSquares(p) {
			m[sq.Rank][sq.File] = true
		}
	}
}

// UnderThreat reports whether a square is threatened by the opponents of
// colour, i.e. whether colour's king would be in check there.
func (b *Board) UnderThreat(colour chess.Colour, rank, file int) bool {
	if !chess.WithinBounds(chess.Pos(rank, file)) {
		return false
	}
	if colour == chess.White {
		return b.threatenedByBlack[rank][file]
	}
	return b.threatenedByWhite[rank][file]
}

// findKing returns the king of the given colour, or nil if it is not on the board.
func (b *Board) findKing(colour chess.Colour) *chess.Piece {
	for _, p := range b.pieces {
		if p.Kind == chess.King && p.Colour == colour {
			return p
		}
	}
	return nil
}

// kingInCheck reports whether colour's king stands on a threatened square.
// It does not touch the check flags.
func (b *Board) kingInCheck(colour chess.Colour) bool {
	king := b.findKing(colour)
	if king == nil {
		return false
	}
	return b.UnderThreat(colour, king.Pos.Rank, king.Pos.File)
}

// IsKingInCheck reports whether colour's king is in check and records the
// answer in the matching check flag.
func (b *Board) IsKingInCheck(colour chess.Colour) bool {
	inCheck := b.kingInCheck(colour)
	if colour == chess.White {
		b.whiteInCheck = inCheck
	} else {
		b.blackInCheck = inCheck
	}
	return inCheck
}

// IsKingInCheckmate reports whether colour is checkmated under the
// configured rule and records the answer in the matching checkmate flag.
func (b *Board) IsKingInCheckmate(colour chess.Colour) bool {
	mated := false
	if b.IsKingInCheck(colour) {
		switch b.cfg.Rules.Checkmate {
		case config.KingEscapesOnly:
			mated = !b.kingCanEscape(colour)
		default:
			mated = !b.HasLegalMoves(colour)
		}
	}
	if colour == chess.White {
		b.whiteInCheckmate = mated
	} else {
		b.blackInCheckmate = mated
	}
	return mated
}

// kingCanEscape reports whether the king has a neighbouring square that is
// not threatened and not held by a piece of its own colour.
func (b *Board) kingCanEscape(colour chess.Colour) bool {
	king := b.findKing(colour)
	if king == nil {
		return false
	}
	for _, sq := range b.AllMoves(king) {
		if b.UnderThreat(colour, sq.Rank, sq.File) {
			continue
		}
		if occupant := b.cells.At(sq).Piece; occupant == nil || occupant.Colour != colour {
			return true
		}
	}
	return false
}

// CanThreatenKing reports whether moving the piece on the source square to
// the destination would leave its own king in check. A king stepping onto
// a threatened square is rejected directly. Otherwise the move is played
// provisionally, en passant capture included, and then reverted so that the
// grid, registry, piece positions and threat maps are exactly as before.
func (b *Board) CanThreatenKing(srcRank, srcFile, destRank, destFile int) bool {
	src, dest := chess.Pos(srcRank, srcFile), chess.Pos(destRank, destFile)
	if !chess.WithinBounds(src) || !chess.WithinBounds(dest) {
		return false
	}
	srcCell, destCell := b.cells.At(src), b.cells.At(dest)
	mover := srcCell.Piece
	if mover == nil {
		return false
	}
	if mover.Kind == chess.King && b.UnderThreat(mover.Colour, destRank, destFile) {
		return true
	}

	registry := b.pieces
	whiteThreats, blackThreats := b.threatenedByWhite, b.threatenedByBlack
	destPiece := destCell.Piece
	captured := destPiece
	var victimCell *chess.Cell
	if victim := b.enPassantVictim(mover, dest); victim != nil {
		captured = victim
		victimCell = b.cells.At(victim.Pos)
		victimCell.Piece = nil
	}

	b.pieces = removePiece(slices.Clone(registry), captured)
	srcCell.Piece = nil
	destCell.Piece = mover
	mover.Pos = dest
	b.FindThreats()

	exposed := b.kingInCheck(mover.Colour)

	mover.Pos = src
	srcCell.Piece = mover
	destCell.Piece = destPiece
	if victimCell != nil {
		victimCell.Piece = captured
	}
	b.pieces = registry
	b.threatenedByWhite, b.threatenedByBlack = whiteThreats, blackThreats

	return exposed
}

// removePiece deletes p from the registry, keeping the order of the rest.
// It edits pieces in place.
func removePiece(pieces []*chess.Piece, p *chess.Piece) []*chess.Piece {
	if p == nil {
		return pieces
	}
	if i := slices.Index(pieces, p); i >= 0 {
		return slices.Delete(pieces, i, i+1)
	}
	return pieces
}

// refreshStatus recomputes check and checkmate for both colours and
// derives the outcome from them.
func (b *Board) refreshStatus() {
	b.outcome = Outcome{}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if b.IsKingInCheckmate(colour) {
			b.outcome = Outcome{Result: Checkmate, Winner: colour.Opposite()}
		}
	}
}
