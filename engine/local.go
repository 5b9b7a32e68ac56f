package engine

import (
	"fmt"
	"time"

	"rbnim/agent"
	"rbnim/game"
	"rbnim/utils"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State     *game.GameState
	Agents    map[game.Player]agent.Agent
	listeners []Listener
}

// LocalEngine seats one agent per player around state.
func LocalEngine(state *game.GameState, agents map[game.Player]agent.Agent, listeners ...Listener) (*Engine, error) {
	if state == nil {
		return nil, fmt.Errorf("engine: nil game state")
	}
	for _, p := range []game.Player{game.Human, game.Computer} {
		if agents[p] == nil {
			return nil, fmt.Errorf("engine: no agent seated for %s", p)
		}
	}
	return &Engine{
		State:     state,
		Agents:    agents,
		listeners: listeners,
	}, nil
}

// Run plays the game until a pile is empty and returns the outcome. Every
// move removes at least one marble, so the loop always ends.
func (e *Engine) Run() (Outcome, error) {
	outcome := Outcome{
		Starting:  e.State.Turn(),
		Variant:   e.State.Variant(),
		StartTime: time.Now(),
	}

	log.Info().Msgf("%s is starting with %s (%s rules)", e.State.Turn(), e.State, e.State.Variant())
	for _, l := range e.listeners {
		l.OnStart(e.State)
	}

	step := 1
	for !e.State.IsGameOver() {
		player := e.State.Turn()

		move, metrics, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return outcome, fmt.Errorf("turn %d (%s): %w", step, player, err)
		}
		if !utils.Contains(e.State.LegalMoves(), move) {
			return outcome, fmt.Errorf("turn %d (%s): %w: %s from %s", step, player, game.ErrInvalidMove, move, e.State)
		}
		if err := e.State.Play(move); err != nil {
			return outcome, fmt.Errorf("turn %d (%s): %w", step, player, err)
		}

		turn := Turn{
			Step:    step,
			Player:  player,
			Move:    move,
			Hash:    e.State.Hash(),
			Metrics: metrics,
		}
		outcome.Turns = append(outcome.Turns, turn)

		log.Debug().
			Int("step", step).
			Stringer("player", player).
			Stringer("move", move).
			Int("red", e.State.Red()).
			Int("blue", e.State.Blue()).
			Msg("move played")
		for _, l := range e.listeners {
			l.OnMove(turn, e.State)
		}
		step++
	}

	winner, err := e.State.Outcome()
	if err != nil {
		return outcome, fmt.Errorf("resolving winner: %w", err)
	}

	outcome.Winner = winner
	outcome.Red = e.State.Red()
	outcome.Blue = e.State.Blue()
	outcome.Score = e.State.Evaluate()
	outcome.Duration = time.Since(outcome.StartTime)

	log.Info().Msgf("game over after %d moves, winner: %s", len(outcome.Turns), winner)
	for _, l := range e.listeners {
		l.OnGameOver(outcome)
	}
	return outcome, nil
}
