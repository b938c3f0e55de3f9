package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/history"
)

// SavedGame is the on-disk form of a game history.
type SavedGame struct {
	Name     string       `json:"name"`
	SaveDate time.Time    `json:"saveDate"`
	States   []SavedState `json:"states"`
}

// SavedState is one snapshot. Board holds the grid indexed [rank][file];
// Pieces lists the same pieces in registry order.
type SavedState struct {
	Board    [chess.BoardSize][chess.BoardSize]*SavedPiece `json:"board"`
	Pieces   []SavedPiece                                  `json:"pieces"`
	Turn     int                                           `json:"turn"`
	Title    string                                        `json:"title"`
	LastMove *SavedMove                                    `json:"lastMove,omitempty"`
}

// SavedPiece is a piece with its position.
type SavedPiece struct {
	Kind     string `json:"kind"`   // "P", "N", "B", "R", "Q" or "K"
	Colour   string `json:"colour"` // "White" or "Black"
	HasMoved bool   `json:"hasMoved,omitempty"`
	Rank     int    `json:"rank"`
	File     int    `json:"file"`
}

// SavedMove is the move that produced a state.
type SavedMove struct {
	FromRank int `json:"fromRank"`
	FromFile int `json:"fromFile"`
	ToRank   int `json:"toRank"`
	ToFile   int `json:"toFile"`
}

// WriteGame encodes a game history as indented JSON.
func WriteGame(w io.Writer, h *history.GameHistory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(h))
}

// ReadGame decodes a game written by WriteGame and rebuilds its history.
func ReadGame(r io.Reader) (*history.GameHistory, error) {
	var sg SavedGame
	if err := json.NewDecoder(r).Decode(&sg); err != nil {
		return nil, fmt.Errorf("decoding game: %w: %v", errors.ErrInvalidSave, err)
	}
	return GameFromJSON(&sg)
}

// GameToJSON converts a history to its saved form.
func GameToJSON(h *history.GameHistory) *SavedGame {
	sg := &SavedGame{Name: h.Name, SaveDate: h.SaveDate}
	for _, s := range h.Snapshots() {
		sg.States = append(sg.States, stateToJSON(s))
	}
	return sg
}

// stateToJSON converts one snapshot.
func stateToJSON(s history.Snapshot) SavedState {
	ss := SavedState{Turn: s.Turn, Title: s.Title}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if p := s.Board[rank][file].Piece; p != nil {
				sp := pieceToJSON(p)
				ss.Board[rank][file] = &sp
			}
		}
	}
	ss.Pieces = make([]SavedPiece, 0, len(s.Pieces))
	for _, p := range s.Pieces {
		ss.Pieces = append(ss.Pieces, pieceToJSON(p))
	}
	if m := s.LastMove; m != nil {
		ss.LastMove = &SavedMove{
			FromRank: m.From.Rank,
			FromFile: m.From.File,
			ToRank:   m.To.Rank,
			ToFile:   m.To.File,
		}
	}
	return ss
}

// pieceToJSON converts a piece.
func pieceToJSON(p *chess.Piece) SavedPiece {
	return SavedPiece{
		Kind:     string(p.Kind.Letter()),
		Colour:   p.Colour.String(),
		HasMoved: p.HasMoved,
		Rank:     p.Pos.Rank,
		File:     p.Pos.File,
	}
}

// GameFromJSON validates a saved game and rebuilds its history. Any
// inconsistency is reported as a *errors.SaveError wrapping ErrInvalidSave.
func GameFromJSON(sg *SavedGame) (*history.GameHistory, error) {
	if len(sg.States) == 0 {
		return nil, &errors.SaveError{Err: errors.ErrInvalidSave, State: -1, Field: "states"}
	}
	h := history.New()
	h.Name = sg.Name
	h.SaveDate = sg.SaveDate
	for i := range sg.States {
		snap, err := stateFromJSON(i, &sg.States[i])
		if err != nil {
			return nil, err
		}
		h.Append(snap)
	}
	return h, nil
}

// stateFromJSON rebuilds one snapshot. The piece list must name exactly
// the pieces on the board.
func stateFromJSON(index int, ss *SavedState) (history.Snapshot, error) {
	invalid := func(field string, args ...interface{}) error {
		return &errors.SaveError{Err: errors.ErrInvalidSave, State: index, Field: fmt.Sprintf(field, args...)}
	}

	grid := chess.NewGrid()
	onBoard := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sp := ss.Board[rank][file]
			if sp == nil {
				continue
			}
			if sp.Rank != rank || sp.File != file {
				return history.Snapshot{}, invalid("board[%d][%d] records position (%d,%d)", rank, file, sp.Rank, sp.File)
			}
			p, ok := pieceFromJSON(sp)
			if !ok {
				return history.Snapshot{}, invalid("board[%d][%d] piece %q/%q", rank, file, sp.Kind, sp.Colour)
			}
			grid.Put(p)
			onBoard++
		}
	}

	if len(ss.Pieces) != onBoard {
		return history.Snapshot{}, invalid("pieces lists %d of %d pieces", len(ss.Pieces), onBoard)
	}
	seen := make(map[chess.Position]bool, onBoard)
	pieces := make([]*chess.Piece, 0, onBoard)
	for i, sp := range ss.Pieces {
		pos := chess.Pos(sp.Rank, sp.File)
		if !chess.WithinBounds(pos) || seen[pos] {
			return history.Snapshot{}, invalid("pieces[%d]", i)
		}
		p := grid.At(pos).Piece
		if p == nil || sp.Kind != string(p.Kind.Letter()) || sp.Colour != p.Colour.String() || sp.HasMoved != p.HasMoved {
			return history.Snapshot{}, invalid("pieces[%d] does not match the board", i)
		}
		seen[pos] = true
		pieces = append(pieces, p)
	}

	snap := history.Snapshot{Board: grid, Pieces: pieces, Turn: ss.Turn, Title: ss.Title}
	if m := ss.LastMove; m != nil {
		move := chess.Move{From: chess.Pos(m.FromRank, m.FromFile), To: chess.Pos(m.ToRank, m.ToFile)}
		if !chess.WithinBounds(move.From) || !chess.WithinBounds(move.To) {
			return history.Snapshot{}, invalid("lastMove %v", move)
		}
		snap.LastMove = &move
	}
	return snap, nil
}

// pieceFromJSON decodes the kind and colour of a saved piece.
func pieceFromJSON(sp *SavedPiece) (*chess.Piece, bool) {
	if len(sp.Kind) != 1 {
		return nil, false
	}
	kind, ok := chess.ParsePieceKind(sp.Kind[0])
	if !ok {
		return nil, false
	}
	var colour chess.Colour
	switch sp.Colour {
	case chess.White.String():
		colour = chess.White
	case chess.Black.String():
		colour = chess.Black
	default:
		return nil, false
	}
	p := chess.NewPiece(kind, colour, chess.Pos(sp.Rank, sp.File))
	p.HasMoved = sp.HasMoved
	return p, true
}
