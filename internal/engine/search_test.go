package engine

import (
	"errors"
	"testing"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
	"github.com/orielsanchez/chess-engine-sub000/internal/testutil"
)

func mustParseFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	testutil.AssertNoErrorf(t, err, "parse %q", fen)
	return pos
}

func TestFindsMateInOne(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		score int
	}{
		{
			"white back rank mate",
			"6k1/8/6K1/8/8/8/8/R7 w - - 0 1",
			"a1a8",
			MateScore,
		},
		{
			"black back rank mate",
			"r7/8/8/8/8/6k1/8/6K1 b - - 0 1",
			"a8a1",
			-MateScore,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			s := NewSearcher(2)

			result, err := s.FindBestMove(pos, MaterialEvaluator{})
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, result.BestMove.String(), tc.move)
			testutil.AssertEqual(t, result.Score, tc.score)
		})
	}
}

func TestMinimaxTerminalValues(t *testing.T) {
	s := NewSearcher(3)
	eval := MaterialEvaluator{}

	// Black checkmated: a win for the maximizing side at any remaining depth.
	mate := mustParseFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	testutil.AssertEqual(t, s.minimax(mate, 3, false, eval), MateScore)

	// Black stalemated: exactly zero.
	stalemate := mustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertEqual(t, s.minimax(stalemate, 3, false, eval), 0)

	// White checkmated, mirrored sign.
	mated := mustParseFEN(t, "k7/8/8/8/8/8/6PP/r6K w - - 0 1")
	testutil.AssertEqual(t, s.minimax(mated, 3, true, eval), -MateScore)
}

func TestNoLegalMovesIsError(t *testing.T) {
	pos := mustParseFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	s := NewSearcher(2)

	_, err := s.FindBestMove(pos, MaterialEvaluator{})
	if !errors.Is(err, ErrNoLegalMoves) {
		t.Fatalf("err = %v, want ErrNoLegalMoves", err)
	}
}

func TestSingleLegalMoveShortCircuits(t *testing.T) {
	// White's king has exactly one safe square.
	pos := mustParseFEN(t, "2r5/8/8/8/8/8/7r/K7 w - - 0 1")
	s := NewSearcher(5)

	result, err := s.FindBestMove(pos, MaterialEvaluator{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, result.BestMove.String(), "a1b1")
	testutil.AssertEqual(t, result.Nodes, uint64(1))
	testutil.AssertEqual(t, result.Depth, 1)
}

func TestForcedMoveNotCachedAsFullDepth(t *testing.T) {
	// White's king has exactly one safe square; the analysis is a one-ply
	// answer and must not satisfy a later probe at the configured depth.
	pos := mustParseFEN(t, "2r5/8/8/8/8/8/7r/K7 w - - 0 1")
	e := NewEngine(5, 1)

	first, err := e.Analyze(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, first.Depth, 1)

	_, ok := e.Table().Probe(pos.Hash, 5)
	testutil.AssertTrue(t, !ok, "one-ply result must not satisfy a depth-5 probe")
	_, ok = e.Table().Probe(pos.Hash, 1)
	testutil.AssertTrue(t, ok, "one-ply result is probeable at its own depth")
}

func TestTakesHangingQueen(t *testing.T) {
	pos := mustParseFEN(t, "k7/8/8/3q4/4P3/8/8/K7 w - - 0 1")
	s := NewSearcher(2)

	result, err := s.FindBestMove(pos, MaterialEvaluator{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, result.BestMove.String(), "e4d5")
	testutil.AssertTruef(t, result.Score > 0, "score %d should reflect the won queen", result.Score)
}

func TestNodeCountResetsPerSearch(t *testing.T) {
	pos := board.NewPosition()
	s := NewSearcher(2)

	first, err := s.FindBestMove(pos, MaterialEvaluator{})
	testutil.AssertNoError(t, err)
	second, err := s.FindBestMove(pos, MaterialEvaluator{})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, second.Nodes, first.Nodes)
}

func TestEvaluatorSymmetry(t *testing.T) {
	eval := MaterialEvaluator{}

	start := board.NewPosition()
	testutil.AssertEqual(t, eval.Evaluate(start), 0)

	noBlackQueen := mustParseFEN(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertTrue(t, eval.Evaluate(noBlackQueen) > 800, "missing black queen should favor White")

	noWhiteQueen := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	testutil.AssertTrue(t, eval.Evaluate(noWhiteQueen) < -800, "missing white queen should favor Black")
}

func TestEngineAnalyzeUsesTable(t *testing.T) {
	e := NewEngine(2, 1)
	pos := board.NewPosition()

	first, err := e.Analyze(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, !first.Cached, "first analysis must search")
	testutil.AssertTrue(t, first.Nodes > 0, "search should visit nodes")

	second, err := e.Analyze(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, second.Cached, "second analysis should come from the table")
	testutil.AssertEqual(t, second.BestMove, first.BestMove)
	testutil.AssertEqual(t, second.Score, first.Score)
	testutil.AssertEqual(t, e.Table().Hits(), uint64(1))
}

func TestEngineDeeperProbeMisses(t *testing.T) {
	e := NewEngine(2, 1)
	pos := board.NewPosition()

	_, err := e.Analyze(pos)
	testutil.AssertNoError(t, err)

	// Raising the depth must invalidate the shallower cached result.
	e.SetDepth(3)
	again, err := e.Analyze(pos)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, !again.Cached, "depth-2 entry must not satisfy a depth-3 request")
	testutil.AssertEqual(t, again.Depth, 3)
}

func TestPerftCounts(t *testing.T) {
	pos := board.NewPosition()

	testutil.AssertEqual(t, Perft(pos, 1), uint64(20))
	testutil.AssertEqual(t, Perft(pos, 2), uint64(400))
	testutil.AssertEqual(t, Perft(pos, 3), uint64(8902))

	divide := PerftDivide(pos, 2)
	testutil.AssertEqual(t, len(divide), 20)
	testutil.AssertEqual(t, divide["e2e4"], uint64(20))
}

func TestIsMateScore(t *testing.T) {
	testutil.AssertTrue(t, IsMateScore(MateScore), "positive mate")
	testutil.AssertTrue(t, IsMateScore(-MateScore), "negative mate")
	testutil.AssertTrue(t, !IsMateScore(900), "material score is not mate")
}
