package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status summarises the check state of both kings.
type Status int

const (
	NoChecks Status = iota
	WhiteInCheck
	BlackInCheck
	WhiteInCheckmate
	BlackInCheckmate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case WhiteInCheck:
		return "White in check"
	case BlackInCheck:
		return "Black in check"
	case WhiteInCheckmate:
		return "White in checkmate"
	case BlackInCheckmate:
		return "Black in checkmate"
	}
	return "No checks"
}

// CheckGameProgress reports the most severe check state on the board.
// Checkmate outranks check and White is reported before Black.
func (b *Board) CheckGameProgress() Status {
	switch {
	case b.whiteInCheckmate:
		return WhiteInCheckmate
	case b.blackInCheckmate:
		return BlackInCheckmate
	case b.whiteInCheck:
		return WhiteInCheck
	case b.blackInCheck:
		return BlackInCheck
	}
	return NoChecks
}

// Result is the way a game ended, or InProgress.
type Result int

const (
	InProgress Result = iota
	Checkmate
	Resignation
	Draw
)

// String returns the string representation of a result.
func (r Result) String() string {
	switch r {
	case Checkmate:
		return "Checkmate"
	case Resignation:
		return "Resignation"
	case Draw:
		return "Draw"
	}
	return "In progress"
}

// Outcome is the state of a game. Winner is only meaningful for
// Checkmate and Resignation.
type Outcome struct {
	Result Result
	Winner chess.Colour
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o.Result != InProgress
}

// String describes the outcome, e.g. "Checkmate, White wins".
func (o Outcome) String() string {
	switch o.Result {
	case Checkmate, Resignation:
		return fmt.Sprintf("%v, %v wins", o.Result, o.Winner)
	}
	return o.Result.String()
}

// Outcome returns the current state of the game.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// AddNoMoveState records an event that does not change the board, such as
// a resignation or an agreed draw, and advances the turn.
func (b *Board) AddNoMoveState(title string) {
	b.history.AddState(&b.cells, b.pieces, b.turn, title, nil)
	b.turn++
}

// Resign ends the game with a win for the opponent of colour.
func (b *Board) Resign(colour chess.Colour) error {
	if b.outcome.Over() {
		return fmt.Errorf("%v cannot resign: %w", colour, errors.ErrGameOver)
	}
	b.outcome = Outcome{Result: Resignation, Winner: colour.Opposite()}
	b.AddNoMoveState(fmt.Sprintf("%v resigns. %v wins!", colour, colour.Opposite()))
	b.logf(1, "%v resigns on turn %d", colour, b.turn-1)
	return nil
}

// AgreeDraw ends the game as a draw.
func (b *Board) AgreeDraw() error {
	if b.outcome.Over() {
		return fmt.Errorf("cannot agree a draw: %w", errors.ErrGameOver)
	}
	b.outcome = Outcome{Result: Draw}
	b.AddNoMoveState("Draw. No one wins.")
	b.logf(1, "Draw agreed on turn %d", b.turn-1)
	return nil
}

// UndoPrevMove discards the newest snapshot and restores the board to the
// one before it. The initial state cannot be undone.
func (b *Board) UndoPrevMove() error {
	snap, err := b.history.Undo()
	if err != nil {
		return errors.Wrap(err, "undo")
	}
	b.resumeFrom(snap)
	b.logf(1, "Undo to turn %d", snap.Turn)
	return nil
}
