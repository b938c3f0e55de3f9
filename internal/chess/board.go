package chess

import (
	"strconv"
	"strings"
)

// Cell is one square of the board. It holds at most one piece.
// Shaded only drives the checkerboard pattern when rendering.
type Cell struct {
	Pos    Position
	Piece  *Piece
	Shaded bool
}

// String returns the two-letter piece name, "##" for an empty shaded
// square or two spaces for an empty light square.
func (c Cell) String() string {
	if c.Piece != nil {
		return c.Piece.String()
	}
	if c.Shaded {
		return "##"
	}
	return "  "
}

// Grid is the 8x8 board indexed as grid[rank][file].
type Grid [BoardSize][BoardSize]Cell

// backRank lists the piece kinds of a back rank from file 0 to file 7.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewGrid creates an empty grid with positions and shading filled in.
func NewGrid() Grid {
	var g Grid
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			g[rank][file] = Cell{
				Pos:    Position{Rank: rank, File: file},
				Shaded: (rank+file)%2 == 1,
			}
		}
	}
	return g
}

// InitialGrid creates a grid holding the standard starting position.
func InitialGrid() Grid {
	g := NewGrid()
	for file := 0; file < BoardSize; file++ {
		g.Put(NewPiece(backRank[file], Black, Pos(HomeRank(Black), file)))
		g.Put(NewPiece(Pawn, Black, Pos(PawnStartRank(Black), file)))
		g.Put(NewPiece(Pawn, White, Pos(PawnStartRank(White), file)))
		g.Put(NewPiece(backRank[file], White, Pos(HomeRank(White), file)))
	}
	return g
}

// At returns the cell at p. p must be within bounds.
func (g *Grid) At(p Position) *Cell {
	return &g[p.Rank][p.File]
}

// Put places a piece on the cell named by its position, replacing
// whatever was there.
func (g *Grid) Put(p *Piece) {
	g[p.Pos.Rank][p.Pos.File].Piece = p
}

// Pieces returns the pieces on the grid in row-major order.
func (g *Grid) Pieces() []*Piece {
	var pieces []*Piece
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := g[rank][file].Piece; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Flatten returns the 64 cells in row-major order: rank 0 to 7, and
// file 0 to 7 within each rank.
func (g *Grid) Flatten() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		cells = append(cells, g[rank][:]...)
	}
	return cells
}

// CopyState deep-copies a grid together with a piece list that points into
// it. The returned list keeps the order of pieces and refers to the copied
// pieces; entries that are not on the grid are dropped. A nil list yields
// the copied pieces in row-major order.
func CopyState(g *Grid, pieces []*Piece) (Grid, []*Piece) {
	var out Grid
	copies := make(map[*Piece]*Piece, len(pieces))
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			cell := g[rank][file]
			if cell.Piece != nil {
				c := cell.Piece.Clone()
				copies[cell.Piece] = c
				cell.Piece = c
			}
			out[rank][file] = cell
		}
	}
	if pieces == nil {
		return out, out.Pieces()
	}
	list := make([]*Piece, 0, len(pieces))
	for _, p := range pieces {
		if c, ok := copies[p]; ok {
			list = append(list, c)
		}
	}
	return out, list
}

// String renders the grid with one line per rank, rank 0 first. Each line
// ends with the chess rank number and a file legend closes the board.
func (g *Grid) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sb.WriteString(g[rank][file].String())
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(BoardSize - rank))
		sb.WriteByte('\n')
	}
	sb.WriteString(" a  b  c  d  e  f  g  h")
	return sb.String()
}
