package render

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/history"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestBoard_AsciiMatchesTextForm(t *testing.T) {
	g := chess.InitialGrid()
	r := New(termenv.Ascii)

	testutil.AssertTrue(t, r.Plain(), "Ascii renderer is plain")
	testutil.AssertEqual(t, r.Board(&g, nil), g.String())
}

func TestBoard_ColourProfile(t *testing.T) {
	g := chess.InitialGrid()
	r := New(termenv.TrueColor)
	testutil.AssertFalse(t, r.Plain(), "TrueColor renderer is plain")

	out := r.Board(&g, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != chess.BoardSize+1 {
		t.Fatalf("Board() has %d lines; want %d", len(lines), chess.BoardSize+1)
	}
	testutil.AssertContains(t, out, "\x1b[", "escape sequences present")
	testutil.AssertContains(t, lines[0], " R ")
	if !strings.HasSuffix(lines[0], " 8") {
		t.Errorf("line 0 = %q; want rank number 8 at the end", lines[0])
	}
	testutil.AssertEqual(t, lines[8], " a  b  c  d  e  f  g  h ")
}

func TestBoard_HighlightsLastMove(t *testing.T) {
	g := chess.InitialGrid()
	r := New(termenv.TrueColor).WithPalette(Palette{
		LightSquare: "#111111",
		DarkSquare:  "#222222",
		Highlight:   "#ff0000",
		WhitePiece:  "#ffffff",
		BlackPiece:  "#000000",
	})

	plain := r.Board(&g, nil)
	move := &chess.Move{From: chess.Pos(6, 4), To: chess.Pos(4, 4)}
	lit := r.Board(&g, move)

	if strings.Contains(plain, "255;0;0") {
		t.Error("highlight colour used without a move")
	}
	if got := strings.Count(lit, "255;0;0"); got != 2 {
		t.Errorf("highlight used on %d squares; want 2", got)
	}
}

func TestSnapshot(t *testing.T) {
	h := history.New()
	g := chess.InitialGrid()
	h.AddState(&g, nil, 0, history.InitialTitle, nil)
	snap, _ := h.Last()

	out := New(termenv.Ascii).Snapshot(snap)
	testutil.AssertEqual(t, out, snap.String())

	coloured := New(termenv.ANSI256).Snapshot(snap)
	testutil.AssertContains(t, coloured, "Game start!")
	testutil.AssertContains(t, coloured, "\x1b[")
}
