package display

import (
	"bytes"
	"testing"

	"rbnim/engine"
	"rbnim/game"

	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, false)

	state, err := game.NewGameState(1, 2, game.Standard, game.Computer)
	require.NoError(t, err)
	term.OnStart(state)

	move, err := game.NewMove(game.Red, 1)
	require.NoError(t, err)
	require.NoError(t, state.Play(move))
	term.OnMove(engine.Turn{Step: 1, Player: game.Computer, Move: move}, state)

	term.OnGameOver(engine.Outcome{Winner: game.Computer, Red: 0, Blue: 2, Score: 6})

	require.Equal(t, "Playing standard Red-Blue Nim, computer moves first.\n"+
		"Red: 1, Blue: 2\n"+
		"Computer picks 1 red marbles.\n"+
		"Computer wins!\n"+
		"Final score: 6 (Red: 0, Blue: 2)\n", buf.String())
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Human", capitalize("human"))
	require.Equal(t, "", capitalize(""))
}
