package game

import (
	"fmt"
	"strconv"
	"strings"
)

const MaxTake = 2

// Move removes 1 or 2 marbles of a single color. The zero Move is not a
// valid move; build moves with NewMove or ParseMove.
type Move struct {
	color Color
	count int
}

func NewMove(color Color, count int) (Move, error) {
	if !color.Valid() {
		return Move{}, fmt.Errorf("%w: unknown color %d", ErrInvalidMove, int(color))
	}
	if count < 1 || count > MaxTake {
		return Move{}, fmt.Errorf("%w: count %d must be 1 or 2", ErrInvalidMove, count)
	}
	return Move{color: color, count: count}, nil
}

// mustMove is for the fixed move table, whose entries are valid by construction.
func mustMove(color Color, count int) Move {
	m, err := NewMove(color, count)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMove parses human input of the form "<color> <count>", e.g. "red 2".
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: expected \"<color> <count>\", got %q", ErrInvalidMove, s)
	}
	color, err := ParseColor(fields[0])
	if err != nil {
		return Move{}, err
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: count %q is not a number", ErrInvalidMove, fields[1])
	}
	return NewMove(color, count)
}

func (m Move) Color() Color {
	return m.color
}

func (m Move) Count() int {
	return m.count
}

func (m Move) Valid() bool {
	return m.color.Valid() && m.count >= 1 && m.count <= MaxTake
}

func (m Move) String() string {
	return fmt.Sprintf("%d %s", m.count, m.color)
}
