package searcher

import (
	"fmt"

	"rbnim/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks moves for the maximizing player with a depth-bounded
// minimax search, pruned with alpha-beta unless disabled.
type Searcher struct {
	depth   Depth
	pruning bool
	metrics MetricsCollector
}

func WithDepth(depth Depth) Option {
	return func(s *Searcher) {
		s.depth = depth
	}
}

// WithoutPruning searches the full tree. Only useful for comparison.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewMetricsCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:   Unbounded,
		pruning: true,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() Depth {
	return s.depth
}

// Search evaluates state for the maximizing player with a full window.
// The state is mutated during the search and restored before returning.
func (s *Searcher) Search(state *game.GameState) (Result, SearchMetrics, error) {
	s.metrics.Start(s.depth, s.pruning)
	w := walker{metrics: s.metrics, prune: s.pruning}
	result, err := w.search(state, s.depth, NegInf, PosInf, true, 0)
	metrics := s.metrics.Complete()
	if err != nil {
		return Result{}, metrics, err
	}

	log.Debug().
		Int("value", result.Value).
		Stringer("move", result.Move).
		Bool("has_move", result.HasMove).
		Stringer("depth", s.depth).
		Int64("nodes", metrics.Nodes).
		Int64("cutoffs", metrics.Cutoffs).
		Msg("search complete")
	return result, metrics, nil
}

// AlphaBeta runs minimax with alpha-beta pruning from state. Use NegInf and
// PosInf as alpha and beta for a root search.
func AlphaBeta(state *game.GameState, depth Depth, alpha, beta int, maximizing bool) (Result, error) {
	w := walker{metrics: NewNoMetricsCollector(), prune: true}
	return w.search(state, depth, alpha, beta, maximizing, 0)
}

// Minimax runs the same search without pruning.
func Minimax(state *game.GameState, depth Depth, maximizing bool) (Result, error) {
	w := walker{metrics: NewNoMetricsCollector(), prune: false}
	return w.search(state, depth, NegInf, PosInf, maximizing, 0)
}

type walker struct {
	metrics MetricsCollector
	prune   bool
}

func (w walker) search(state *game.GameState, depth Depth, alpha, beta int, maximizing bool, ply int) (Result, error) {
	w.metrics.AddNode(ply)

	if depth.Exhausted() || state.IsGameOver() {
		w.metrics.AddLeaf()
		return Result{Value: state.Evaluate()}, nil
	}

	best := Result{Value: PosInf}
	if maximizing {
		best.Value = NegInf
	}

	for _, move := range state.LegalMoves() {
		value, err := w.child(state, move, depth.Next(), alpha, beta, !maximizing, ply+1)
		if err != nil {
			return Result{}, err
		}

		// Strict comparisons keep the earliest move on ties
		if maximizing {
			if !best.HasMove || value > best.Value {
				best = Result{Value: value, Move: move, HasMove: true}
			}
			alpha = max(alpha, value)
		} else {
			if !best.HasMove || value < best.Value {
				best = Result{Value: value, Move: move, HasMove: true}
			}
			beta = min(beta, value)
		}

		if w.prune && beta <= alpha {
			w.metrics.AddCutoff()
			break
		}
	}

	return best, nil
}

// child evaluates the position after move; the move is undone on every return path.
func (w walker) child(state *game.GameState, move game.Move, depth Depth, alpha, beta int, maximizing bool, ply int) (int, error) {
	if err := state.ApplyMove(move); err != nil {
		return 0, fmt.Errorf("searching %s at ply %d: %w", move, ply, err)
	}
	defer state.UndoMove(move)

	result, err := w.search(state, depth, alpha, beta, maximizing, ply)
	if err != nil {
		return 0, err
	}
	return result.Value, nil
}
