package engine

import (
	"time"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// Analysis is the engine's answer for one position.
type Analysis struct {
	BestMove board.Move
	Score    int
	Depth    int
	Nodes    uint64
	Time     time.Duration
	Cached   bool // satisfied from the transposition table
}

// Engine ties the fixed-depth searcher to a transposition table and a leaf
// evaluator. The search itself never consults the table mid-tree; the table
// memoizes whole-position results across Analyze calls, so repeating or
// transposing into an already-analyzed position is free.
type Engine struct {
	searcher *Searcher
	tt       *TranspositionTable
	eval     Evaluator
}

// NewEngine creates an engine searching to the given depth with a
// transposition table of ttSizeMB megabytes and the default evaluator.
func NewEngine(depth, ttSizeMB int) *Engine {
	return &Engine{
		searcher: NewSearcher(depth),
		tt:       NewTranspositionTable(ttSizeMB),
		eval:     MaterialEvaluator{},
	}
}

// SetEvaluator replaces the leaf evaluator, e.g. with a tablebase-backed one.
func (e *Engine) SetEvaluator(eval Evaluator) {
	e.eval = eval
}

// SetDepth changes the search depth for subsequent Analyze calls.
func (e *Engine) SetDepth(depth int) {
	e.searcher = NewSearcher(depth)
}

// Depth returns the configured search depth.
func (e *Engine) Depth() int { return e.searcher.Depth() }

// Table exposes the transposition table for stats reporting.
func (e *Engine) Table() *TranspositionTable { return e.tt }

// NewGame bumps the table generation so entries from the previous game age
// out instead of being trusted forever.
func (e *Engine) NewGame() {
	e.tt.NewSearch()
}

// Analyze returns the best move for the position. The transposition table is
// probed first; on a miss the position is searched and the exact result
// stored. Returns ErrNoLegalMoves when the game is over.
func (e *Engine) Analyze(pos *board.Position) (Analysis, error) {
	depth := e.searcher.Depth()

	if entry, ok := e.tt.Probe(pos.Hash, depth); ok {
		return Analysis{
			BestMove: entry.BestMove,
			Score:    int(entry.Score),
			Depth:    int(entry.Depth),
			Cached:   true,
		}, nil
	}

	start := time.Now()
	result, err := e.searcher.FindBestMove(pos, e.eval)
	if err != nil {
		return Analysis{}, err
	}

	// Store at the depth the search actually achieved: a short-circuited
	// forced move is a one-ply answer and must not masquerade as deeper.
	e.tt.Store(pos.Hash, result.Score, result.Depth, result.BestMove, TTExact)

	return Analysis{
		BestMove: result.BestMove,
		Score:    result.Score,
		Depth:    result.Depth,
		Nodes:    result.Nodes,
		Time:     time.Since(start),
	}, nil
}

// Evaluate scores the position with the current leaf evaluator.
func (e *Engine) Evaluate(pos *board.Position) int {
	return e.eval.Evaluate(pos)
}

// IsMateScore reports whether a score denotes a forced mate.
func IsMateScore(score int) bool {
	return abs(score) >= MateScore
}

// Perft counts leaf nodes of the legal move tree to the given depth. It is a
// move generator correctness check, not a search.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range pos.GenerateLegalMoves() {
		next := pos.Copy()
		next.MakeMove(m)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide returns per-root-move leaf counts, the standard way to narrow
// down a generator disagreement.
func PerftDivide(pos *board.Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, m := range pos.GenerateLegalMoves() {
		next := pos.Copy()
		next.MakeMove(m)
		counts[m.String()] = Perft(next, depth-1)
	}
	return counts
}
