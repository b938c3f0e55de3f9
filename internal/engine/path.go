package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// slidingObstacle walks from the square after from toward to, to included,
// and returns the first occupied square. from and to must share a line.
func (b *Board) slidingObstacle(from, to chess.Position) (chess.Position, bool) {
	step := chess.Step(from, to)
	for next := chess.Add(from, step); chess.WithinBounds(next); next = chess.Add(next, step) {
		if b.cells.At(next).Piece != nil {
			return next, true
		}
		if next == to {
			break
		}
	}
	return chess.Position{}, false
}

// slidingMoves returns, for each direction of a slider, the empty squares
// up to the first obstacle followed by the obstacle itself.
func (b *Board) slidingMoves(p *chess.Piece) []chess.Position {
	var moves []chess.Position
	for _, dir := range chess.Directions(p.Kind, p.Colour) {
		for _, next := range chess.PositionsBetweenMax(dir, p.Pos) {
			moves = append(moves, next)
			if b.cells.At(next).Piece != nil {
				break
			}
		}
	}
	return moves
}

// isPathEmpty reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func (b *Board) isPathEmpty(from, to chess.Position) bool {
	for _, next := range chess.PositionsBetween(chess.Step(from, to), from, to) {
		if b.cells.At(next).Piece != nil {
			return false
		}
	}
	return true
}
