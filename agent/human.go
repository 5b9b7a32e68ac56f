package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"rbnim/game"
	"rbnim/searcher"
	"rbnim/utils"
)

var ErrNoInput = errors.New("no more input")

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent that prompts on out and reads moves such
// as "red 2" from in, one per line. Malformed or illegal input is reported
// and asked again.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(state *game.GameState) (game.Move, searcher.SearchMetrics, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return game.Move{}, searcher.SearchMetrics{}, fmt.Errorf("human agent: %w from %s", ErrNoMove, state)
	}

	for {
		fmt.Fprint(a.out, "Enter your move (e.g., 'red 2'): ")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, searcher.SearchMetrics{}, fmt.Errorf("human agent: %w", err)
			}
			return game.Move{}, searcher.SearchMetrics{}, ErrNoInput
		}

		move, err := game.ParseMove(a.in.Text())
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input. Try again.")
			continue
		}
		if utils.FindIndex(legal, move) < 0 {
			fmt.Fprintln(a.out, "Invalid move. Try again.")
			continue
		}
		return move, searcher.SearchMetrics{}, nil
	}
}
