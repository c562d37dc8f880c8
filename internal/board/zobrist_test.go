package board

import "testing"

func TestHashDeterministic(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/4P3/8/8/8/8/8/K6k w - - 0 1",
	}

	for _, fen := range fens {
		a, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		b, _ := ParseFEN(fen)

		if a.ComputeHash() != a.ComputeHash() {
			t.Errorf("%s: ComputeHash not repeatable", fen)
		}
		if a.Hash != b.Hash {
			t.Errorf("%s: two parses disagree: %016x != %016x", fen, a.Hash, b.Hash)
		}
	}
}

func TestHashDistinguishesState(t *testing.T) {
	start := NewPosition()

	// Side to move.
	flipped, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if start.Hash == flipped.Hash {
		t.Error("side to move not reflected in hash")
	}

	// Castling rights.
	noCastle, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	if start.Hash == noCastle.Hash {
		t.Error("castling rights not reflected in hash")
	}
}

func TestHashSideToMoveDoubleToggle(t *testing.T) {
	pos := NewPosition()
	h := pos.Hash
	if HashSideToMove(HashSideToMove(h)) != h {
		t.Error("double side-to-move toggle is not the identity")
	}
}

// TestIncrementalHashEquivalence verifies the required invariant: applying a
// move's incremental hash updates yields exactly the hash recomputed from
// scratch, for every move kind.
func TestIncrementalHashEquivalence(t *testing.T) {
	fens := []string{
		StartFEN,
		// Castles both wings, captures, promotions available.
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		// En passant capture available.
		"rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		// Promotions, quiet and capturing.
		"rnbq1bnr/ppppkP1p/8/8/8/8/PPPP1PPP/RNBQKBNR w KQ - 1 5",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		for _, m := range pos.GenerateLegalMoves() {
			next := pos.Copy()
			next.MakeMove(m)

			if got, want := next.Hash, next.ComputeHash(); got != want {
				t.Errorf("%s after %s (kind %d): incremental %016x != recomputed %016x",
					fen, m, m.Kind, got, want)
			}
		}
	}
}

// TestHashTransposition: the same position reached by different move orders
// must hash identically.
func TestHashTransposition(t *testing.T) {
	a := NewPosition()
	for _, s := range []string{"g1f3", "g8f6", "b1c3", "b8c6"} {
		m, err := ParseMove(s, a)
		if err != nil {
			t.Fatal(err)
		}
		a.MakeMove(m)
	}

	b := NewPosition()
	for _, s := range []string{"b1c3", "b8c6", "g1f3", "g8f6"} {
		m, err := ParseMove(s, b)
		if err != nil {
			t.Fatal(err)
		}
		b.MakeMove(m)
	}

	if a.Hash != b.Hash {
		t.Errorf("transposed positions hash differently: %016x != %016x", a.Hash, b.Hash)
	}
}
