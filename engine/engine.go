package engine

import (
	"time"

	"rbnim/game"
	"rbnim/searcher"
)

// Turn records one move played during a game.
type Turn struct {
	Step    int
	Player  game.Player
	Move    game.Move
	Hash    game.StateHash // hash of the state after the move
	Metrics searcher.SearchMetrics
}

type Outcome struct {
	Winner    game.Player
	Starting  game.Player
	Variant   game.Variant
	Red       int
	Blue      int
	Score     int
	Turns     []Turn
	StartTime time.Time
	Duration  time.Duration
}

// Listener observes a game as the engine plays it.
type Listener interface {
	OnStart(state *game.GameState)
	OnMove(turn Turn, state *game.GameState)
	OnGameOver(outcome Outcome)
}
