package searcher

import (
	"fmt"
	"math"

	"rbnim/game"
)

// Full-window bounds for a root search.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Depth bounds the number of plies searched. The zero value is Unbounded,
// which searches until the game is over.
type Depth struct {
	plies   int
	bounded bool
}

var Unbounded = Depth{}

// Limit bounds the search to the given number of plies. Negative values
// are treated as 0.
func Limit(plies int) Depth {
	return Depth{plies: max(plies, 0), bounded: true}
}

// Plies returns the remaining plies and whether the depth is bounded at all.
func (d Depth) Plies() (int, bool) {
	return d.plies, d.bounded
}

func (d Depth) Exhausted() bool {
	return d.bounded && d.plies == 0
}

// Next returns the depth one ply further down the tree.
func (d Depth) Next() Depth {
	if !d.bounded {
		return d
	}
	return Depth{plies: max(d.plies-1, 0), bounded: true}
}

func (d Depth) String() string {
	if !d.bounded {
		return "unbounded"
	}
	return fmt.Sprintf("%d", d.plies)
}

// Result is the value of a searched node and the move leading to it.
// HasMove is false at a terminal node and when the depth was exhausted on entry.
type Result struct {
	Value   int
	Move    game.Move
	HasMove bool
}
