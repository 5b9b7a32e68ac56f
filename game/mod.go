package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMove        = errors.New("invalid move")
	ErrInvalidPile        = errors.New("invalid pile")
	ErrUnsupportedVariant = errors.New("unsupported rule variant")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrGameNotOver        = errors.New("game is not over")
	ErrNoMoves            = errors.New("no moves played")
)

// Player identifies one of the two seats at the table.
type Player int

const (
	Human Player = iota
	Computer
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == Human {
		return Computer
	}
	return Human
}

func (p Player) Valid() bool {
	return p == Human || p == Computer
}

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// ParsePlayer parses "human" or "computer", case-insensitive.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "computer":
		return Computer, nil
	default:
		return Human, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
	}
}

// Color of a marble pile.
type Color int

const (
	Red Color = iota
	Blue
)

func (c Color) Valid() bool {
	return c == Red || c == Blue
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// ParseColor parses "red" or "blue", case-insensitive.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	default:
		return Red, fmt.Errorf("%w: unknown color %q", ErrInvalidMove, s)
	}
}

// Variant is the win condition, fixed for the lifetime of a game.
type Variant int

const (
	Standard Variant = iota
	Misere
)

func (v Variant) Valid() bool {
	return v == Standard || v == Misere
}

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Misere:
		return "misere"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant accepts "standard", "misere" and "misère", case-insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "misere", "misère":
		return Misere, nil
	default:
		return Standard, fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
	}
}

type StateHash uint64
