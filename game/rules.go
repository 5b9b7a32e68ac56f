package game

import "fmt"

// Winner returns the winner of a finished game given the player who made
// the move that emptied a pile. Under Standard rules that player wins,
// under Misere rules they lose.
func (gs *GameState) Winner(lastMover Player) (Player, error) {
	if !lastMover.Valid() {
		return lastMover, fmt.Errorf("%w: %s", ErrUnknownPlayer, lastMover)
	}
	switch gs.variant {
	case Standard:
		return lastMover, nil
	case Misere:
		return lastMover.Other(), nil
	default:
		return lastMover, fmt.Errorf("%w: %s", ErrUnsupportedVariant, gs.variant)
	}
}

// Outcome resolves the winner from the player who last called Play,
// independent of the turn field.
func (gs *GameState) Outcome() (Player, error) {
	if !gs.IsGameOver() {
		return Human, ErrGameNotOver
	}
	if !gs.moved {
		return Human, ErrNoMoves
	}
	return gs.Winner(gs.lastMover)
}
