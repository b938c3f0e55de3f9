package chess

// Piece is a single chess piece on the board.
// Kind and Colour never change; Pos and HasMoved follow the piece as it moves.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Pos      Position
	HasMoved bool
}

// NewPiece creates an unmoved piece at pos.
func NewPiece(kind PieceKind, colour Colour, pos Position) *Piece {
	return &Piece{Kind: kind, Colour: colour, Pos: pos}
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// String returns the two-letter name of the piece, e.g. "wK" or "bN".
func (p *Piece) String() string {
	return string([]byte{p.Colour.Letter(), p.Kind.Letter()})
}

// IsSlider reports whether the piece moves along open lines.
func (p *Piece) IsSlider() bool {
	return p.Kind == Bishop || p.Kind == Rook || p.Kind == Queen
}

var (
	straightDirections = []Position{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalDirections = []Position{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
	knightDirections   = []Position{
		{1, -2}, {2, -1}, {2, 1}, {1, 2},
		{-1, -2}, {-2, -1}, {-1, 2}, {-2, 1},
	}
	kingDirections = append(append([]Position{}, straightDirections...), diagonalDirections...)
)

// Directions returns the movement vectors of a piece kind. Pawn vectors
// depend on colour: double push, single push, then the two capture diagonals.
// The returned slice must not be modified.
func Directions(kind PieceKind, colour Colour) []Position {
	switch kind {
	case Pawn:
		f := ColourOffset(colour)
		return []Position{{2 * f, 0}, {f, 0}, {f, 1}, {f, -1}}
	case Knight:
		return knightDirections
	case Bishop:
		return diagonalDirections
	case Rook:
		return straightDirections
	case Queen, King:
		return kingDirections
	}
	return nil
}
