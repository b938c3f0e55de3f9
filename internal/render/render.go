// Package render draws boards for a terminal. Colour profiles shade the
// squares and colour the pieces; the Ascii profile falls back to the plain
// two-letter text form ("wK", "##").
package render

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/history"
)

// Palette holds the hex colours used by colour profiles.
type Palette struct {
	LightSquare string
	DarkSquare  string
	Highlight   string
	WhitePiece  string
	BlackPiece  string
}

// DefaultPalette is a brown board with a yellow last-move highlight.
var DefaultPalette = Palette{
	LightSquare: "#f0d9b5",
	DarkSquare:  "#b58863",
	Highlight:   "#cdd26a",
	WhitePiece:  "#ffffff",
	BlackPiece:  "#000000",
}

// Renderer draws grids and snapshots.
type Renderer struct {
	profile termenv.Profile
	palette Palette
}

// New creates a renderer for the given profile.
func New(profile termenv.Profile) *Renderer {
	return &Renderer{profile: profile, palette: DefaultPalette}
}

// NewFromEnv creates a renderer for the profile detected from the
// environment of standard output.
func NewFromEnv() *Renderer {
	return New(termenv.EnvColorProfile())
}

// WithPalette replaces the colours.
func (r *Renderer) WithPalette(p Palette) *Renderer {
	r.palette = p
	return r
}

// Plain reports whether the renderer draws without colour.
func (r *Renderer) Plain() bool {
	return r.profile == termenv.Ascii
}

// Board draws g with rank 0 at the top, rank numbers on the right and a
// file legend underneath. The squares of last, if any, are highlighted.
func (r *Renderer) Board(g *chess.Grid, last *chess.Move) string {
	if r.Plain() {
		return g.String()
	}

	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			cell := g[rank][file]
			sb.WriteString(r.cell(cell, highlighted(cell.Pos, last)))
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(chess.BoardSize - rank))
		sb.WriteByte('\n')
	}
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + file))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// cell draws one square three columns wide.
func (r *Renderer) cell(c chess.Cell, lit bool) string {
	bg := r.palette.LightSquare
	if c.Shaded {
		bg = r.palette.DarkSquare
	}
	if lit {
		bg = r.palette.Highlight
	}
	style := r.profile.String(cellText(c)).Background(r.profile.Color(bg))
	if c.Piece != nil {
		fg := r.palette.BlackPiece
		if c.Piece.Colour == chess.White {
			fg = r.palette.WhitePiece
		}
		style = style.Foreground(r.profile.Color(fg)).Bold()
	}
	return style.String()
}

// cellText is the piece letter padded to three columns, or blanks.
func cellText(c chess.Cell) string {
	if c.Piece == nil {
		return "   "
	}
	return " " + string(c.Piece.Kind.Letter()) + " "
}

// highlighted reports whether p is an end of the move.
func highlighted(p chess.Position, m *chess.Move) bool {
	return m != nil && (m.From == p || m.To == p)
}

// Snapshot draws a title line followed by the board.
func (r *Renderer) Snapshot(s history.Snapshot) string {
	title := "Turn:" + strconv.Itoa(s.Turn) + " " + s.Title
	if !r.Plain() {
		title = r.profile.String(title).Bold().String()
	}
	return title + "\n" + r.Board(&s.Board, s.LastMove)
}
