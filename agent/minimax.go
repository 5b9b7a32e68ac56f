package agent

import (
	"fmt"

	"rbnim/game"
	"rbnim/searcher"
)

type minimaxAgent struct {
	searcher *searcher.Searcher
}

// NewMinimaxAgent returns the computer opponent. It always searches as the
// maximizing player.
func NewMinimaxAgent(s *searcher.Searcher) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(state *game.GameState) (game.Move, searcher.SearchMetrics, error) {
	result, metrics, err := a.searcher.Search(state)
	if err != nil {
		return game.Move{}, metrics, fmt.Errorf("minimax agent: %w", err)
	}
	if !result.HasMove {
		return game.Move{}, metrics, fmt.Errorf("minimax agent: %w from %s at depth %s", ErrNoMove, state, a.searcher.Depth())
	}
	return result.Move, metrics, nil
}
