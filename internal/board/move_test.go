package board

import (
	"testing"

	"github.com/orielsanchez/chess-engine-sub000/internal/testutil"
)

func TestParseMoveKinds(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want Move
	}{
		{
			"quiet pawn push",
			StartFEN,
			"e2e4",
			Move{From: E2, To: E4, Kind: Quiet},
		},
		{
			"capture",
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			"e4d5",
			Move{From: E4, To: D5, Kind: Capture},
		},
		{
			"en passant capture",
			"rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			"e5d6",
			Move{From: E5, To: D6, Kind: EnPassantCapture},
		},
		{
			"kingside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1g1",
			Move{From: E1, To: G1, Kind: CastleKingside},
		},
		{
			"queenside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			"e8c8",
			Move{From: E8, To: C8, Kind: CastleQueenside},
		},
		{
			"quiet promotion",
			"8/4P3/8/8/8/8/8/K6k w - - 0 1",
			"e7e8q",
			Move{From: E7, To: E8, Kind: PromoteQueen},
		},
		{
			"underpromotion capture",
			"rn6/1P6/8/8/8/8/8/K6k w - - 0 1",
			"b7a8n",
			Move{From: B7, To: A8, Kind: PromoteCaptureKnight},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			testutil.AssertNoError(t, err)

			m, err := ParseMove(tc.uci, pos)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m, tc.want)
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	testutil.AssertNoError(t, err)

	for _, uci := range []string{"", "e2", "e2e4e5", "z2e4", "e2z4", "e2e4x", "e4e5"} {
		_, err := ParseMove(uci, pos)
		testutil.AssertErrorf(t, err, "ParseMove(%q)", uci)
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{Move{From: E2, To: E4, Kind: Quiet}, "e2e4"},
		{Move{From: E1, To: G1, Kind: CastleKingside}, "e1g1"},
		{Move{From: E7, To: E8, Kind: PromoteQueen}, "e7e8q"},
		{Move{From: B7, To: A8, Kind: PromoteCaptureRook}, "b7a8r"},
		{NoMove, "0000"},
	}
	for _, tc := range tests {
		testutil.AssertEqual(t, tc.m.String(), tc.want)
	}
}
