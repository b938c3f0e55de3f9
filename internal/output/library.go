package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/history"
)

// SavedLibrary holds several saved games in one file.
type SavedLibrary struct {
	Games []*SavedGame `json:"games"`
}

// SortOrder selects how a library is listed.
type SortOrder int

const (
	// Unsorted keeps the order in which games were added.
	Unsorted SortOrder = iota
	// ByName sorts by game name, case-insensitively.
	ByName
	// ByDate sorts by save date, newest first.
	ByDate
)

// ParseSortOrder converts "name", "date" or "" into a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return Unsorted, nil
	case "name":
		return ByName, nil
	case "date":
		return ByDate, nil
	}
	return Unsorted, fmt.Errorf("sort order %q: %w", s, errors.ErrInvalidConfig)
}

// SortGames orders histories in place. The sort is stable so games with
// equal keys keep their relative order.
func SortGames(games []*history.GameHistory, order SortOrder) {
	switch order {
	case ByName:
		sort.SliceStable(games, func(i, j int) bool {
			return strings.ToLower(games[i].Name) < strings.ToLower(games[j].Name)
		})
	case ByDate:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].SaveDate.After(games[j].SaveDate)
		})
	}
}

// WriteLibrary encodes several histories as one JSON document.
func WriteLibrary(w io.Writer, games []*history.GameHistory) error {
	lib := &SavedLibrary{Games: make([]*SavedGame, 0, len(games))}
	for _, h := range games {
		lib.Games = append(lib.Games, GameToJSON(h))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lib)
}

// saveFile matches both a library and a single saved game.
type saveFile struct {
	SavedGame
	Games []*SavedGame `json:"games"`
}

// ReadGames decodes either a library written by WriteLibrary or a single
// game written by WriteGame.
func ReadGames(r io.Reader) ([]*history.GameHistory, error) {
	var f saveFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding save file: %w: %v", errors.ErrInvalidSave, err)
	}
	switch {
	case f.Games != nil:
		return gamesFromJSON(f.Games)
	case f.States != nil:
		h, err := GameFromJSON(&f.SavedGame)
		if err != nil {
			return nil, err
		}
		return []*history.GameHistory{h}, nil
	}
	return nil, errors.Wrap(errors.ErrInvalidSave, "save file holds neither games nor states")
}

func gamesFromJSON(saved []*SavedGame) ([]*history.GameHistory, error) {
	games := make([]*history.GameHistory, 0, len(saved))
	for i, sg := range saved {
		if sg == nil {
			return nil, errors.Wrapf(errors.ErrInvalidSave, "game %d is null", i)
		}
		h, err := GameFromJSON(sg)
		if err != nil {
			return nil, errors.Wrapf(err, "game %d", i)
		}
		games = append(games, h)
	}
	return games, nil
}

// FindGame returns the first game with the given name.
func FindGame(games []*history.GameHistory, name string) (*history.GameHistory, bool) {
	for _, h := range games {
		if h.Name == name {
			return h, true
		}
	}
	return nil, false
}
