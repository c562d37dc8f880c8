package tablebase

import (
	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// LeafScorer scores a position in centipawns, positive favoring White.
// engine.Evaluator satisfies it.
type LeafScorer interface {
	Evaluate(pos *board.Position) int
}

// Evaluator overrides leaf scoring with tablebase truth when few enough
// pieces remain, falling back to the wrapped scorer otherwise. It satisfies
// the same interface it wraps, so it plugs straight into the search.
type Evaluator struct {
	prober   Prober
	fallback LeafScorer
}

// NewEvaluator wraps a leaf scorer with a tablebase prober.
func NewEvaluator(prober Prober, fallback LeafScorer) *Evaluator {
	return &Evaluator{prober: prober, fallback: fallback}
}

// Evaluate returns the tablebase verdict when the position is covered,
// converted to White's perspective, and the fallback score otherwise.
func (e *Evaluator) Evaluate(pos *board.Position) int {
	if e.prober != nil && e.prober.Available() && CountPieces(pos) <= e.prober.MaxPieces() {
		if result := e.prober.Probe(pos); result.Found {
			score := WDLToScore(result.WDL, 0)
			// WDL is side-to-move relative; the search wants White-relative.
			if pos.SideToMove == board.Black {
				score = -score
			}
			return score
		}
	}
	return e.fallback.Evaluate(pos)
}
