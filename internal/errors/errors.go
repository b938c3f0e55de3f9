// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules. Every
	// specific move rejection below wraps it.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOffBoard indicates a source or destination outside the 8x8 grid.
	ErrOffBoard = fmt.Errorf("%w: square off the board", ErrIllegalMove)

	// ErrNoPiece indicates there is no piece on the source square.
	ErrNoPiece = fmt.Errorf("%w: no piece on source square", ErrIllegalMove)

	// ErrWrongColour indicates the piece belongs to the other player.
	ErrWrongColour = fmt.Errorf("%w: piece belongs to the opponent", ErrIllegalMove)

	// ErrSameSquare indicates the source and destination are identical.
	ErrSameSquare = fmt.Errorf("%w: source and destination are the same", ErrIllegalMove)

	// ErrUnreachable indicates the piece cannot reach the destination.
	ErrUnreachable = fmt.Errorf("%w: destination not reachable", ErrIllegalMove)

	// ErrKingExposed indicates the move would leave the mover's king in check.
	ErrKingExposed = fmt.Errorf("%w: king would be left in check", ErrIllegalMove)

	// ErrGameOver indicates the game has already ended.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrIllegalMove)

	// ErrHistoryBounds indicates undo or replay went past either end of the history.
	ErrHistoryBounds = errors.New("history bounds exceeded")

	// ErrInvalidPromotion indicates a promotion request that is not allowed.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrNoLegalMoves indicates the side to move has no legal move.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidSave indicates a saved game that cannot be decoded.
	ErrInvalidSave = errors.New("invalid saved game")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the move that caused it. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Turn   int    // Turn number when the move was attempted (0 if not applicable)
	Colour string // Side that attempted the move
	Piece  string // Two-letter piece name, if a piece was on the source square
	From   string // Source square as "(rank,file)"
	To     string // Destination square as "(rank,file)"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s->%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SaveError reports a problem decoding a saved game, with the snapshot
// and square where it was found.
type SaveError struct {
	Err   error  // The underlying error
	State int    // 0-based snapshot index (-1 for game-level fields)
	Field string // Field that failed validation
}

// Error returns a formatted error message with location and context.
func (e *SaveError) Error() string {
	var parts []string
	if e.State >= 0 {
		parts = append(parts, fmt.Sprintf("state %d", e.State))
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "save error"
}

// Unwrap returns the underlying error.
func (e *SaveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
