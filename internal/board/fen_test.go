package board

import (
	"testing"

	"github.com/orielsanchez/chess-engine-sub000/internal/testutil"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	testutil.AssertNoError(t, err)

	if pos.SideToMove != White {
		t.Error("side to move should be white")
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("castling rights = %s, want KQkq", pos.CastlingRights)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("en passant = %s, want none", pos.EnPassant)
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("clocks = %d/%d, want 0/1", pos.HalfMoveClock, pos.FullMoveNumber)
	}

	for _, check := range []struct {
		sq   Square
		want Piece
	}{
		{A1, WhiteRook}, {E1, WhiteKing}, {D1, WhiteQueen},
		{E2, WhitePawn}, {E4, NoPiece}, {E8, BlackKing}, {H8, BlackRook},
	} {
		if got := pos.PieceAt(check.sq); got != check.want {
			t.Errorf("piece at %s = %s, want %s", check.sq, got, check.want)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/8/8/8/8/8/8/4K3 b - - 42 99",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		testutil.AssertNoErrorf(t, err, "parse %q", fen)
		testutil.AssertEqual(t, pos.ToFEN(), fen)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8",                                      // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",            // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",   // bad piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",   // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KZkq - 0 1",   // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",  // bad ep square
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - no 1",  // bad clock
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // 9 squares in a rank
	}

	for _, fen := range bad {
		_, err := ParseFEN(fen)
		testutil.AssertErrorf(t, err, "ParseFEN(%q)", fen)
	}
}
