package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingRookFiles returns the rook's start and end files for a king
// moving from kingFile to destFile.
func castlingRookFiles(kingFile, destFile int) (from, to int) {
	if destFile < kingFile {
		return chess.QueensideRookFile, chess.KingFile - 1
	}
	return chess.KingsideRookFile, chess.KingFile + 1
}

// canCastle reports whether king may castle onto dest. The king must stand
// unmoved on its home square, dest must be two files away on the same rank,
// the rook on that side must be unmoved, every square between them must be
// empty, the king must not be in check, and neither the square the king
// crosses nor dest may be threatened.
func (b *Board) canCastle(king *chess.Piece, dest chess.Position) bool {
	home := chess.Pos(chess.HomeRank(king.Colour), chess.KingFile)
	if king.Kind != chess.King || king.HasMoved || king.Pos != home {
		return false
	}
	if dest.Rank != home.Rank || chess.ManhattanDistance(home, dest).File != 2 {
		return false
	}

	rookFile, _ := castlingRookFiles(home.File, dest.File)
	rook := b.cells.At(chess.Pos(home.Rank, rookFile)).Piece
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
		return false
	}
	if !b.isPathEmpty(home, rook.Pos) {
		return false
	}
	if b.kingInCheck(king.Colour) {
		return false
	}

	step := chess.Step(home, dest)
	for next := chess.Add(home, step); ; next = chess.Add(next, step) {
		if b.UnderThreat(king.Colour, next.Rank, next.File) {
			return false
		}
		if next == dest {
			break
		}
	}
	return true
}

// isCastling reports whether moving p to dest is a castling move. It is
// only meaningful for a move that has already been validated.
func isCastling(p *chess.Piece, dest chess.Position) bool {
	return p.Kind == chess.King && chess.ManhattanDistance(p.Pos, dest).File == 2
}

// castleRook moves the rook that accompanies a castling king from src to
// dest and marks it as moved.
func (b *Board) castleRook(src, dest chess.Position) {
	rookFrom, rookTo := castlingRookFiles(src.File, dest.File)
	fromCell := b.cells.At(chess.Pos(src.Rank, rookFrom))
	rook := fromCell.Piece
	if rook == nil {
		return
	}
	fromCell.Piece = nil
	rook.Pos = chess.Pos(src.Rank, rookTo)
	rook.HasMoved = true
	b.cells.Put(rook)
}
