package chess

import "fmt"

// Position is a rank/file coordinate on the board.
type Position struct {
	Rank int
	File int
}

// Pos builds a Position from a rank and a file.
func Pos(rank, file int) Position {
	return Position{Rank: rank, File: file}
}

// String returns the position as "(rank,file)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
}

// Add returns the component-wise sum of two positions.
func Add(a, b Position) Position {
	return Position{Rank: a.Rank + b.Rank, File: a.File + b.File}
}

// ManhattanDistance returns the absolute rank and file displacement between a and b.
func ManhattanDistance(a, b Position) Position {
	return Position{Rank: abs(a.Rank - b.Rank), File: abs(a.File - b.File)}
}

// SignedDistance returns a minus b, component-wise.
func SignedDistance(a, b Position) Position {
	return Position{Rank: a.Rank - b.Rank, File: a.File - b.File}
}

// WithinBounds reports whether p lies on the board.
func WithinBounds(p Position) bool {
	return p.Rank >= MinRank && p.Rank <= MaxRank && p.File >= MinFile && p.File <= MaxFile
}

// MaxDistanceAlong walks from by direction while on the board and returns
// the last square reached. It returns from itself if the first step leaves
// the board.
func MaxDistanceAlong(direction, from Position) Position {
	last := from
	for next := from; WithinBounds(next); next = Add(next, direction) {
		last = next
	}
	return last
}

// PositionsBetween returns the squares after from along direction, stopping
// before bound or at the edge of the board.
func PositionsBetween(direction, from, bound Position) []Position {
	var positions []Position
	for next := Add(from, direction); WithinBounds(next) && next != bound; next = Add(next, direction) {
		positions = append(positions, next)
	}
	return positions
}

// PositionsBetweenMax returns every square after from along direction up to
// the edge of the board.
func PositionsBetweenMax(direction, from Position) []Position {
	var positions []Position
	for next := Add(from, direction); WithinBounds(next); next = Add(next, direction) {
		positions = append(positions, next)
	}
	return positions
}

// Step returns the unit vector pointing from a toward b. Components are
// -1, 0 or 1.
func Step(from, to Position) Position {
	return Position{Rank: sign(to.Rank - from.Rank), File: sign(to.File - from.File)}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
