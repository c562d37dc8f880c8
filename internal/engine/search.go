package engine

import (
	"errors"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// MateScore is the score assigned when the side to move is checkmated.
// Stalemate scores 0.
const MateScore = 10000

// ErrNoLegalMoves is returned when the side to move has no legal moves.
// The position is already decided (checkmate or stalemate); callers that
// need to know which should ask the board.
var ErrNoLegalMoves = errors.New("no legal moves")

// Result carries the outcome of a search. Depth is the depth actually
// achieved, which is shallower than the configured depth when the search
// short-circuited.
type Result struct {
	BestMove board.Move
	Score    int
	Depth    int
	Nodes    uint64
}

// Searcher runs a fixed-depth exhaustive minimax. No pruning, no move
// ordering, no timeout: every leaf at the configured depth is visited
// exactly once. Not safe for concurrent use.
type Searcher struct {
	depth int
	nodes uint64
}

// NewSearcher creates a searcher for the given depth. Depth 1 means every
// legal root move is scored by a direct leaf evaluation.
func NewSearcher(depth int) *Searcher {
	if depth < 1 {
		depth = 1
	}
	return &Searcher{depth: depth}
}

// Depth returns the configured search depth.
func (s *Searcher) Depth() int { return s.depth }

// Nodes returns the node count of the most recent search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// FindBestMove searches the position to the configured depth. White picks
// the highest-scoring move, Black the lowest; ties keep the move generated
// first. Returns ErrNoLegalMoves when the game is over.
func (s *Searcher) FindBestMove(pos *board.Position, eval Evaluator) (Result, error) {
	s.nodes = 0

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	maximizing := pos.SideToMove == board.White

	// A forced move needs no lookahead: apply it and score the resulting
	// position, which is all a depth-1 search would do. The result reports
	// depth 1 so it is never cached as a full-depth answer.
	if len(moves) == 1 {
		next := pos.Copy()
		next.MakeMove(moves[0])
		s.nodes++
		return Result{BestMove: moves[0], Score: eval.Evaluate(next), Depth: 1, Nodes: s.nodes}, nil
	}

	best := moves[0]
	bestScore := 0
	for i, m := range moves {
		next := pos.Copy()
		next.MakeMove(m)
		score := s.minimax(next, s.depth-1, !maximizing, eval)

		if i == 0 || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best = m
			bestScore = score
		}
	}

	return Result{BestMove: best, Score: bestScore, Depth: s.depth, Nodes: s.nodes}, nil
}

// minimax returns the exhaustive depth-limited value of the position.
// Terminal positions score ∓MateScore for checkmate against the side to
// move, 0 for stalemate.
func (s *Searcher) minimax(pos *board.Position, depth int, maximizing bool, eval Evaluator) int {
	s.nodes++

	if depth == 0 {
		return eval.Evaluate(pos)
	}

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	best := -MateScore - 1
	if !maximizing {
		best = MateScore + 1
	}
	for _, m := range moves {
		next := pos.Copy()
		next.MakeMove(m)
		score := s.minimax(next, depth-1, !maximizing, eval)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}
