package agent

import (
	"errors"

	"rbnim/game"
	"rbnim/searcher"
)

var ErrNoMove = errors.New("no move available")

type Agent interface {
	// FindMove returns the move to play from state. The state is left as it was found.
	FindMove(state *game.GameState) (game.Move, searcher.SearchMetrics, error)
}
