package engine

import (
	"testing"

	"rbnim/agent"
	"rbnim/game"
	"rbnim/searcher"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	moves []game.Move
}

func (s *scriptedAgent) FindMove(state *game.GameState) (game.Move, searcher.SearchMetrics, error) {
	if len(s.moves) == 0 {
		return game.Move{}, searcher.SearchMetrics{}, agent.ErrNoMove
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, searcher.SearchMetrics{}, nil
}

type recordingListener struct {
	started  int
	moves    []Turn
	outcomes []Outcome
}

func (r *recordingListener) OnStart(*game.GameState)             { r.started++ }
func (r *recordingListener) OnMove(turn Turn, _ *game.GameState) { r.moves = append(r.moves, turn) }
func (r *recordingListener) OnGameOver(outcome Outcome)          { r.outcomes = append(r.outcomes, outcome) }

func move(t *testing.T, color game.Color, count int) game.Move {
	t.Helper()
	m, err := game.NewMove(color, count)
	require.NoError(t, err)
	return m
}

func newState(t *testing.T, red, blue int, variant game.Variant, first game.Player) *game.GameState {
	t.Helper()
	gs, err := game.NewGameState(red, blue, variant, first)
	require.NoError(t, err)
	return gs
}

func TestLocalEngine(t *testing.T) {
	t.Run("requires an agent per seat", func(t *testing.T) {
		state := newState(t, 2, 2, game.Standard, game.Human)

		_, err := LocalEngine(state, map[game.Player]agent.Agent{game.Human: &scriptedAgent{}})

		require.Error(t, err)
	})

	t.Run("requires a state", func(t *testing.T) {
		_, err := LocalEngine(nil, map[game.Player]agent.Agent{
			game.Human:    &scriptedAgent{},
			game.Computer: &scriptedAgent{},
		})

		require.Error(t, err)
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("standard: computer empties a pile and wins", func(t *testing.T) {
		state := newState(t, 1, 1, game.Standard, game.Computer)
		listener := &recordingListener{}
		e, err := LocalEngine(state, map[game.Player]agent.Agent{
			game.Human:    &scriptedAgent{},
			game.Computer: agent.NewMinimaxAgent(searcher.NewSearcher()),
		}, listener)
		require.NoError(t, err)

		outcome, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Computer, outcome.Winner)
		require.Equal(t, game.Computer, outcome.Starting)
		require.Equal(t, 0, outcome.Red)
		require.Equal(t, 1, outcome.Blue)
		require.Equal(t, 3, outcome.Score)
		require.Len(t, outcome.Turns, 1)
		require.Equal(t, move(t, game.Red, 1), outcome.Turns[0].Move)

		require.Equal(t, 1, listener.started)
		require.Len(t, listener.moves, 1)
		require.Len(t, listener.outcomes, 1)
	})

	t.Run("misere: computer empties a pile and loses", func(t *testing.T) {
		state := newState(t, 1, 1, game.Misere, game.Computer)
		e, err := LocalEngine(state, map[game.Player]agent.Agent{
			game.Human:    &scriptedAgent{},
			game.Computer: agent.NewMinimaxAgent(searcher.NewSearcher()),
		})
		require.NoError(t, err)

		outcome, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Human, outcome.Winner)
	})

	t.Run("alternates turns between the seats", func(t *testing.T) {
		state := newState(t, 3, 3, game.Standard, game.Human)
		human := &scriptedAgent{moves: []game.Move{move(t, game.Red, 1), move(t, game.Blue, 1)}}
		computer := &scriptedAgent{moves: []game.Move{move(t, game.Blue, 1), move(t, game.Red, 2)}}
		e, err := LocalEngine(state, map[game.Player]agent.Agent{game.Human: human, game.Computer: computer})
		require.NoError(t, err)

		outcome, err := e.Run()

		require.NoError(t, err)
		require.Len(t, outcome.Turns, 4)
		require.Equal(t, game.Human, outcome.Turns[0].Player)
		require.Equal(t, game.Computer, outcome.Turns[1].Player)
		require.Equal(t, game.Human, outcome.Turns[2].Player)
		require.Equal(t, game.Computer, outcome.Turns[3].Player)
		require.Equal(t, game.Computer, outcome.Winner, "Computer took the last red marbles")
		require.Equal(t, 0, outcome.Red)
		require.Equal(t, 1, outcome.Blue)
	})

	t.Run("rejects an illegal move", func(t *testing.T) {
		state := newState(t, 1, 3, game.Standard, game.Human)
		e, err := LocalEngine(state, map[game.Player]agent.Agent{
			game.Human:    &scriptedAgent{moves: []game.Move{move(t, game.Red, 2)}},
			game.Computer: &scriptedAgent{},
		})
		require.NoError(t, err)

		_, err = e.Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Equal(t, 1, state.Red(), "Illegal move should not be applied")
	})

	t.Run("surfaces agent errors", func(t *testing.T) {
		state := newState(t, 2, 2, game.Standard, game.Human)
		e, err := LocalEngine(state, map[game.Player]agent.Agent{
			game.Human:    &scriptedAgent{},
			game.Computer: &scriptedAgent{},
		})
		require.NoError(t, err)

		_, err = e.Run()

		require.ErrorIs(t, err, agent.ErrNoMove)
	})

	t.Run("game over before the first move has no winner", func(t *testing.T) {
		state := newState(t, 0, 2, game.Standard, game.Human)
		e, err := LocalEngine(state, map[game.Player]agent.Agent{
			game.Human:    &scriptedAgent{},
			game.Computer: &scriptedAgent{},
		})
		require.NoError(t, err)

		_, err = e.Run()

		require.ErrorIs(t, err, game.ErrNoMoves)
	})
}
