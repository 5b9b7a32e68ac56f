package agent

import (
	"fmt"

	"rbnim/game"
	"rbnim/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents built with the same seed play the same sequence of choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, searcher.SearchMetrics, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.SearchMetrics{}, fmt.Errorf("random agent: %w from %s", ErrNoMove, state)
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetrics{}, nil
}
