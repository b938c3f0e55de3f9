package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MakeRandomMove plays a random legal move for colour and returns it. It
// draws a piece of that colour uniformly from the registry and one of its
// candidate moves uniformly, and retries until the pair is legal. A pawn
// reaching its promotion rank is promoted to a random kind. The board's
// seeded source makes the sequence reproducible.
func (b *Board) MakeRandomMove(colour chess.Colour) (chess.Move, error) {
	if b.outcome.Over() {
		return chess.Move{}, fmt.Errorf("%v to move: %w", colour, errors.ErrGameOver)
	}
	if !b.HasLegalMoves(colour) {
		return chess.Move{}, errors.Wrapf(errors.ErrNoLegalMoves, "%v on turn %d", colour, b.turn)
	}

	for {
		p := b.pieces[b.rng.Intn(len(b.pieces))]
		if p.Colour != colour {
			continue
		}
		moves := b.candidateMoves(p)
		if len(moves) == 0 {
			continue
		}
		dest := moves[b.rng.Intn(len(moves))]
		src := p.Pos
		if b.legal(src, dest, colour) != nil {
			continue
		}

		if p.Kind == chess.Pawn && dest.Rank == chess.PromotionRank(colour) {
			kind := chess.PromotionKinds[b.rng.Intn(len(chess.PromotionKinds))]
			if err := b.Promote(src.Rank, src.File, colour, kind); err != nil {
				return chess.Move{}, err
			}
		}
		b.MovePiece(src.File, src.Rank, dest.File, dest.Rank, colour)
		return chess.Move{From: src, To: dest}, nil
	}
}
