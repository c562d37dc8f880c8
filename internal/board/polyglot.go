package board

// Polyglot hash keys, kept separate from the engine's internal Zobrist keys
// so probing standard-format opening books stays independent of the search
// hashing scheme.
var (
	polyglotPieces     [12][64]uint64 // [piece kind][square]
	polyglotCastling   [4]uint64      // [KQkq]
	polyglotEnPassant  [8]uint64      // [file]
	polyglotSideToMove uint64
)

func init() {
	initPolyglotKeys()
}

func initPolyglotKeys() {
	var s uint64 = 0x37b4a4b3f0d1c0d0

	rng := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545F4914F6CDD1D
	}

	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			polyglotPieces[piece][sq] = rng()
		}
	}
	for i := 0; i < 4; i++ {
		polyglotCastling[i] = rng()
	}
	for i := 0; i < 8; i++ {
		polyglotEnPassant[i] = rng()
	}
	polyglotSideToMove = rng()
}

// Polyglot piece ordering: bp, bN, bB, bR, bQ, bK, wp, wN, wB, wR, wQ, wK.
var polyglotPieceKind = [2][6]int{
	White: {6, 7, 8, 9, 10, 11},
	Black: {0, 1, 2, 3, 4, 5},
}

// PolyglotHash computes the Polyglot-convention hash key for the position,
// used for opening book lookups.
func (p *Position) PolyglotHash() uint64 {
	var hash uint64

	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece {
			continue
		}
		hash ^= polyglotPieces[polyglotPieceKind[piece.Color()][piece.Type()]][sq]
	}

	if p.CastlingRights&WhiteKingSideCastle != 0 {
		hash ^= polyglotCastling[0]
	}
	if p.CastlingRights&WhiteQueenSideCastle != 0 {
		hash ^= polyglotCastling[1]
	}
	if p.CastlingRights&BlackKingSideCastle != 0 {
		hash ^= polyglotCastling[2]
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 {
		hash ^= polyglotCastling[3]
	}

	// En passant counts only when a pawn of the side to move actually
	// stands ready to capture, per the Polyglot convention.
	if p.EnPassant != NoSquare && p.canCaptureEnPassant() {
		hash ^= polyglotEnPassant[p.EnPassant.File()]
	}

	if p.SideToMove == White {
		hash ^= polyglotSideToMove
	}

	return hash
}

func (p *Position) canCaptureEnPassant() bool {
	// The capturing pawn sits beside the square the doubled pawn skipped to.
	rank := 4 // white pawns capture from rank 5 (index 4)
	if p.SideToMove == Black {
		rank = 3
	}
	pawn := NewPiece(Pawn, p.SideToMove)
	file := p.EnPassant.File()
	if file > 0 && p.Squares[MustSquare(file-1, rank)] == pawn {
		return true
	}
	if file < 7 && p.Squares[MustSquare(file+1, rank)] == pawn {
		return true
	}
	return false
}
