package display

import (
	"fmt"
	"io"
	"strings"

	"rbnim/engine"
	"rbnim/game"

	"github.com/muesli/termenv"
)

const (
	redHex  = "#E06C75"
	blueHex = "#61AFEF"
)

// Terminal prints the piles, each move and the result of a game.
type Terminal struct {
	out *termenv.Output
}

// NewTerminal writes to w. With color disabled the output is plain ASCII.
func NewTerminal(w io.Writer, color bool) *Terminal {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Terminal{out: termenv.NewOutput(w, opts...)}
}

func (t *Terminal) OnStart(state *game.GameState) {
	fmt.Fprintf(t.out, "Playing %s Red-Blue Nim, %s moves first.\n", state.Variant(), state.Turn())
	t.piles(state)
}

func (t *Terminal) OnMove(turn engine.Turn, state *game.GameState) {
	move := t.paint(turn.Move.Color(), fmt.Sprintf("%d %s", turn.Move.Count(), turn.Move.Color()))
	fmt.Fprintf(t.out, "%s picks %s marbles.\n", capitalize(turn.Player.String()), move)
	if !state.IsGameOver() {
		t.piles(state)
	}
}

func (t *Terminal) OnGameOver(outcome engine.Outcome) {
	winner := t.out.String(capitalize(outcome.Winner.String()) + " wins!").Bold()
	fmt.Fprintln(t.out, winner)
	fmt.Fprintf(t.out, "Final score: %d (Red: %s, Blue: %s)\n",
		outcome.Score,
		t.paint(game.Red, fmt.Sprint(outcome.Red)),
		t.paint(game.Blue, fmt.Sprint(outcome.Blue)))
}

func (t *Terminal) piles(state *game.GameState) {
	fmt.Fprintf(t.out, "Red: %s, Blue: %s\n",
		t.paint(game.Red, fmt.Sprint(state.Red())),
		t.paint(game.Blue, fmt.Sprint(state.Blue())))
}

func (t *Terminal) paint(c game.Color, s string) termenv.Style {
	hex := redHex
	if c == game.Blue {
		hex = blueHex
	}
	return t.out.String(s).Foreground(t.out.Color(hex))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
