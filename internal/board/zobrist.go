package board

// Zobrist hash keys for position hashing. The tables are process-wide
// immutable state, filled exactly once at package initialization from a
// fixed-seed generator so hashes are identical across runs and instances.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // one per file
	zobristCastling   [16]uint64       // all 16 castling-rights combinations
	zobristSideToMove uint64           // XORed in when Black is to move
)

func init() {
	initZobrist()
}

// lcg is a 64-bit linear congruential generator (Knuth MMIX constants).
// Seeded deterministically; only used for the Zobrist key tables.
type lcg struct {
	state uint64
}

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

func (g *lcg) next() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return g.state
}

func initZobrist() {
	rng := newLCG(0x9E3779B97F4A7C15) // fixed seed

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// ComputeHash computes the Zobrist hash of the position from scratch:
// XOR of the keys for every occupied square, the castling-rights key, the
// en-passant file key (none if no target), and the side-to-move key (only
// when Black is to move).
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece {
			continue
		}
		hash ^= zobristPiece[piece.Color()][piece.Type()][sq]
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[p.CastlingRights]

	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	return hash
}

// The incremental helpers below mirror ComputeHash feature by feature:
// applying them for the state a move changes must yield the same value as
// recomputing from scratch on the resulting position.

// HashPieceMove toggles a piece off its origin square and onto its
// destination square.
func HashPieceMove(hash uint64, c Color, pt PieceType, from, to Square) uint64 {
	return hash ^ zobristPiece[c][pt][from] ^ zobristPiece[c][pt][to]
}

// HashPieceToggle toggles a single piece on or off a square. Used for
// captures, promotions and any other placement change.
func HashPieceToggle(hash uint64, c Color, pt PieceType, sq Square) uint64 {
	return hash ^ zobristPiece[c][pt][sq]
}

// HashCastlingRights swaps the old castling-rights key for the new one.
func HashCastlingRights(hash uint64, old, new CastlingRights) uint64 {
	return hash ^ zobristCastling[old] ^ zobristCastling[new]
}

// HashEnPassant swaps the old en-passant key for the new one. NoSquare
// contributes nothing.
func HashEnPassant(hash uint64, old, new Square) uint64 {
	if old != NoSquare {
		hash ^= zobristEnPassant[old.File()]
	}
	if new != NoSquare {
		hash ^= zobristEnPassant[new.File()]
	}
	return hash
}

// HashSideToMove toggles the side-to-move key. Applying it twice is the
// identity.
func HashSideToMove(hash uint64) uint64 {
	return hash ^ zobristSideToMove
}
