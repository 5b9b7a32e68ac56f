package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState holds the two piles, the rule variant and whose turn it is.
// The search mutates it in place through ApplyMove and UndoMove; the
// driver advances the game through Play.
type GameState struct {
	red       int
	blue      int
	variant   Variant
	turn      Player
	lastMover Player
	moved     bool // whether lastMover is set
}

// NewGameState initializes and returns a new GameState.
func NewGameState(red, blue int, variant Variant, first Player) (*GameState, error) {
	if red < 0 || blue < 0 {
		return nil, fmt.Errorf("%w: red=%d blue=%d must not be negative", ErrInvalidPile, red, blue)
	}
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVariant, variant)
	}
	if !first.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, first)
	}
	return &GameState{
		red:     red,
		blue:    blue,
		variant: variant,
		turn:    first,
	}, nil
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

func (gs *GameState) Red() int {
	return gs.red
}

func (gs *GameState) Blue() int {
	return gs.blue
}

// Count returns the pile of the given color.
func (gs *GameState) Count(c Color) int {
	if c == Red {
		return gs.red
	}
	return gs.blue
}

func (gs *GameState) Variant() Variant {
	return gs.variant
}

// Turn returns the player to move.
func (gs *GameState) Turn() Player {
	return gs.turn
}

// LastMover returns the player who made the last Play, if any.
func (gs *GameState) LastMover() (Player, bool) {
	return gs.lastMover, gs.moved
}

// IsGameOver reports whether either pile is empty.
func (gs *GameState) IsGameOver() bool {
	return gs.red == 0 || gs.blue == 0
}

// the order decides search tie-breaking
var moveTable = [...]Move{
	mustMove(Red, 1),
	mustMove(Red, 2),
	mustMove(Blue, 1),
	mustMove(Blue, 2),
}

// LegalMoves returns every move the piles allow, always in the order
// red 1, red 2, blue 1, blue 2.
func (gs *GameState) LegalMoves() []Move {
	moves := make([]Move, 0, len(moveTable))
	for _, m := range moveTable {
		if m.count <= gs.Count(m.color) {
			moves = append(moves, m)
		}
	}
	return moves
}

// ApplyMove removes the marbles of m. The state is left untouched on error.
func (gs *GameState) ApplyMove(m Move) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidMove, m)
	}
	pile := gs.pile(m.color)
	if *pile-m.count < 0 {
		return fmt.Errorf("%w: cannot take %s from %d", ErrInvalidMove, m, *pile)
	}
	*pile -= m.count
	return nil
}

// UndoMove puts back the marbles of m. It is the exact inverse of ApplyMove.
func (gs *GameState) UndoMove(m Move) {
	*gs.pile(m.color) += m.count
}

// Play applies m on behalf of the player on turn, records them as the
// last mover and hands the turn over.
func (gs *GameState) Play(m Move) error {
	if err := gs.ApplyMove(m); err != nil {
		return err
	}
	gs.lastMover = gs.turn
	gs.moved = true
	gs.turn = gs.turn.Other()
	return nil
}

func (gs *GameState) pile(c Color) *int {
	if c == Red {
		return &gs.red
	}
	return &gs.blue
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(gs.red))
	binary.Write(hasher, binary.LittleEndian, int64(gs.blue))
	binary.Write(hasher, binary.LittleEndian, int64(gs.variant))
	binary.Write(hasher, binary.LittleEndian, int64(gs.turn))
	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("Red: %d, Blue: %d", gs.red, gs.blue)
}
