package main

import (
	"bytes"
	"strings"
	"testing"

	"rbnim/config"
	"rbnim/game"
	"rbnim/searcher"

	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("computer opens and wins a one marble game", func(t *testing.T) {
		var out bytes.Buffer
		cfg := config.Config{Red: 1, Blue: 1, Variant: game.Standard, First: game.Computer, Depth: searcher.Unbounded}

		err := play(cfg, strings.NewReader(""), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Computer picks 1 red marbles.")
		require.Contains(t, out.String(), "Computer wins!")
	})

	t.Run("human move ends a misere game and the computer wins", func(t *testing.T) {
		var out bytes.Buffer
		cfg := config.Config{Red: 1, Blue: 2, Variant: game.Misere, First: game.Human, Depth: searcher.Limit(2)}

		err := play(cfg, strings.NewReader("red 1\n"), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Human picks 1 red marbles.")
		require.Contains(t, out.String(), "Computer wins!")
		require.Contains(t, out.String(), "Final score: 6 (Red: 0, Blue: 2)")
	})

	t.Run("human input running out stops the game", func(t *testing.T) {
		cfg := config.Config{Red: 3, Blue: 3, Variant: game.Standard, First: game.Human, Depth: searcher.Unbounded}

		err := play(cfg, strings.NewReader(""), &bytes.Buffer{})

		require.Error(t, err)
	})
}
