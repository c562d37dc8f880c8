package board

import (
	"testing"

	"github.com/orielsanchez/chess-engine-sub000/internal/testutil"
)

// applySequence plays UCI moves from the starting position.
func applySequence(t *testing.T, moves ...string) *Position {
	t.Helper()
	pos := NewPosition()
	for _, s := range moves {
		m, err := ParseMove(s, pos)
		testutil.AssertNoErrorf(t, err, "parse %s", s)
		pos.MakeMove(m)
	}
	return pos
}

// TestMakeMoveMatchesFromScratch: every derived field after MakeMove must
// match a from-scratch construction of the resulting position, so no hidden
// state can drift.
func TestMakeMoveMatchesFromScratch(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		after string
	}{
		{
			name:  "pawn double push sets en passant",
			fen:   StartFEN,
			move:  "e2e4",
			after: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "quiet knight move increments clock and clears en passant",
			fen:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:  "g8f6",
			after: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:  "capture resets clock",
			fen:   "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			move:  "e4d5",
			after: "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		},
		{
			name:  "white kingside castle moves both pieces and drops rights",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 4 8",
			move:  "e1g1",
			after: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 5 8",
		},
		{
			name:  "black queenside castle",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 5 8",
			move:  "e8c8",
			after: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 w - - 6 9",
		},
		{
			name:  "rook move drops only its wing",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:  "h1g1",
			after: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K1R1 b Qkq - 1 1",
		},
		{
			name:  "en passant capture removes the bypassed pawn",
			fen:   "rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			move:  "e5d6",
			after: "rnbqkbnr/pp2pppp/3P4/2p5/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:  "promotion replaces the pawn",
			fen:   "8/4P3/8/8/8/8/8/K6k w - - 3 40",
			move:  "e7e8q",
			after: "4Q3/8/8/8/8/8/8/K6k b - - 0 40",
		},
		{
			name:  "promotion capture on rook home square revokes rights",
			fen:   "rnbqkbnr/pP2pppp/8/8/8/8/P1PP1PPP/RNBQKBNR w KQkq - 0 5",
			move:  "b7a8q",
			after: "Qnbqkbnr/p3pppp/8/8/8/8/P1PP1PPP/RNBQKBNR b KQk - 0 5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			testutil.AssertNoError(t, err)

			m, err := ParseMove(tc.move, pos)
			testutil.AssertNoError(t, err)
			pos.MakeMove(m)

			want, err := ParseFEN(tc.after)
			testutil.AssertNoError(t, err)

			testutil.AssertEqualf(t, pos, want, "%s after %s", tc.fen, tc.move)
		})
	}
}

func TestCastlingRightsMonotonic(t *testing.T) {
	pos := NewPosition()
	prev := pos.CastlingRights

	for _, s := range []string{"e2e4", "e7e5", "g1f3", "g8f6", "f1c4", "f8c5", "e1g1"} {
		m, err := ParseMove(s, pos)
		testutil.AssertNoError(t, err)
		pos.MakeMove(m)

		// Rights only ever shrink.
		if pos.CastlingRights&^prev != 0 {
			t.Fatalf("castling rights re-granted after %s: %s -> %s", s, prev, pos.CastlingRights)
		}
		prev = pos.CastlingRights
	}

	if pos.CastlingRights.CanCastle(White, true) || pos.CastlingRights.CanCastle(White, false) {
		t.Error("white retains castling rights after castling")
	}
	if !pos.CastlingRights.CanCastle(Black, true) {
		t.Error("black kingside right lost without cause")
	}
}

func TestFullMoveNumber(t *testing.T) {
	pos := applySequence(t, "e2e4", "e7e5", "g1f3")
	if pos.FullMoveNumber != 2 {
		t.Errorf("full move number = %d, want 2", pos.FullMoveNumber)
	}
	m, err := ParseMove("b8c6", pos)
	testutil.AssertNoError(t, err)
	pos.MakeMove(m)
	if pos.FullMoveNumber != 3 {
		t.Errorf("full move number = %d after black's move, want 3", pos.FullMoveNumber)
	}
}
