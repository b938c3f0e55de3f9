// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the lowercase initial used in compact piece names.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind identifies one of the six chess piece types.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParsePieceKind converts an uppercase piece letter back into a kind.
func ParsePieceKind(letter byte) (PieceKind, bool) {
	for k := Pawn; k < NumPieceKinds; k++ {
		if k.Letter() == letter {
			return k, true
		}
	}
	return 0, false
}

// IsPromotionTarget reports whether a pawn may be promoted to this kind.
func (k PieceKind) IsPromotionTarget() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// PromotionKinds lists the kinds a pawn may become, in the order offered to players.
var PromotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

// Constants for board dimensions and coordinates.
// Rank 0 is Black's back rank and rank 7 is White's, so White pawns
// advance toward lower ranks.
const (
	BoardSize = 8
	MinRank   = 0
	MaxRank   = BoardSize - 1
	MinFile   = 0
	MaxFile   = BoardSize - 1

	KingFile          = 4
	QueensideRookFile = 0
	KingsideRookFile  = 7
)

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return MaxRank
	}
	return MinRank
}

// PawnStartRank returns the rank a colour's pawns start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return MaxRank - 1
	}
	return MinRank + 1
}

// PromotionRank returns the far rank on which a colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// ColourOffset returns -1 for White, +1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Move is a source/destination square pair.
type Move struct {
	From Position
	To   Position
}

// String returns the move as "(r,f)->(r,f)".
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}
