package board

// delta is a (file, rank) step used by the offset tables and ray walks.
type delta struct {
	df, dr int
}

var (
	knightDeltas = [8]delta{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingDeltas = [8]delta{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	bishopDeltas = [4]delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDeltas   = [4]delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// offset returns the square at (file+df, rank+dr), or NoSquare if that
// falls off the board.
func offset(sq Square, d delta) Square {
	file := sq.File() + d.df
	rank := sq.Rank() + d.dr
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return MustSquare(file, rank)
}

// IsSquareAttacked reports whether the given square is attacked by any piece
// of the given color. Pawn diagonals, knight jumps, sliding rays and
// adjacent kings are checked independently; rays stop at the first occupied
// square. Pure function of the position, no side effects.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	// Pawn attacks: a pawn one rank towards its own side, on an adjacent
	// file, attacks sq diagonally.
	pawnRankDelta := -1 // white pawns attack from one rank below
	if by == Black {
		pawnRankDelta = 1
	}
	pawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if from := offset(sq, delta{df, pawnRankDelta}); from != NoSquare && p.Squares[from] == pawn {
			return true
		}
	}

	// Knight jumps.
	knight := NewPiece(Knight, by)
	for _, d := range knightDeltas {
		if from := offset(sq, d); from != NoSquare && p.Squares[from] == knight {
			return true
		}
	}

	// Sliding attacks: walk each ray until the first occupied square; it
	// counts only if that square holds an attacker of the right kind.
	bishop := NewPiece(Bishop, by)
	rook := NewPiece(Rook, by)
	queen := NewPiece(Queen, by)
	for _, d := range bishopDeltas {
		if first := p.firstAlongRay(sq, d); first == bishop || first == queen {
			return true
		}
	}
	for _, d := range rookDeltas {
		if first := p.firstAlongRay(sq, d); first == rook || first == queen {
			return true
		}
	}

	// Adjacent enemy king.
	king := NewPiece(King, by)
	for _, d := range kingDeltas {
		if from := offset(sq, d); from != NoSquare && p.Squares[from] == king {
			return true
		}
	}

	return false
}

// firstAlongRay returns the first piece encountered walking from sq in the
// given direction, or NoPiece if the ray exits the board empty.
func (p *Position) firstAlongRay(sq Square, d delta) Piece {
	cur := offset(sq, d)
	for cur != NoSquare {
		if piece := p.Squares[cur]; piece != NoPiece {
			return piece
		}
		cur = offset(cur, d)
	}
	return NoPiece
}

// InCheck reports whether the given color's king is attacked by the
// opposite color. False if that king is absent.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}
