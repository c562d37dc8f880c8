package board

// castleRevoke maps a square to the castling rights lost when a piece moves
// from it or a capture lands on it. Rights are only ever cleared, never
// re-granted.
var castleRevoke = [64]CastlingRights{
	A1: WhiteQueenSideCastle,
	E1: WhiteKingSideCastle | WhiteQueenSideCastle,
	H1: WhiteKingSideCastle,
	A8: BlackQueenSideCastle,
	E8: BlackKingSideCastle | BlackQueenSideCastle,
	H8: BlackKingSideCastle,
}

// MakeMove applies a move already known to be pseudo-legal for this
// position, updating all derived state (castling rights, en passant target,
// clocks, side to move) and the Zobrist hash in one atomic step. Behavior is
// undefined for moves that are not pseudo-legal; the caller holds that
// contract, it is not checked here.
func (p *Position) MakeMove(m Move) {
	us := p.SideToMove
	them := us.Other()
	piece := p.Squares[m.From]
	pt := piece.Type()

	oldRights := p.CastlingRights
	oldEP := p.EnPassant

	switch {
	case m.Kind == EnPassantCapture:
		// The captured pawn sits one rank behind the destination, on the
		// mover's direction of travel.
		capSq := m.To - 8
		if us == Black {
			capSq = m.To + 8
		}
		p.removePiece(capSq)
		p.Hash = HashPieceToggle(p.Hash, them, Pawn, capSq)

		p.removePiece(m.From)
		p.setPiece(piece, m.To)
		p.Hash = HashPieceMove(p.Hash, us, Pawn, m.From, m.To)

	case m.Kind == CastleKingside:
		rookFrom, rookTo := m.To+1, m.To-1
		p.setPiece(p.removePiece(m.From), m.To)
		p.setPiece(p.removePiece(rookFrom), rookTo)
		p.Hash = HashPieceMove(p.Hash, us, King, m.From, m.To)
		p.Hash = HashPieceMove(p.Hash, us, Rook, rookFrom, rookTo)

	case m.Kind == CastleQueenside:
		rookFrom, rookTo := m.To-2, m.To+1
		p.setPiece(p.removePiece(m.From), m.To)
		p.setPiece(p.removePiece(rookFrom), rookTo)
		p.Hash = HashPieceMove(p.Hash, us, King, m.From, m.To)
		p.Hash = HashPieceMove(p.Hash, us, Rook, rookFrom, rookTo)

	case m.Kind.IsPromotion():
		if captured := p.removePiece(m.To); captured != NoPiece {
			p.Hash = HashPieceToggle(p.Hash, them, captured.Type(), m.To)
		}
		p.removePiece(m.From)
		p.Hash = HashPieceToggle(p.Hash, us, Pawn, m.From)

		promoted := NewPiece(m.Kind.PromotionPiece(), us)
		p.setPiece(promoted, m.To)
		p.Hash = HashPieceToggle(p.Hash, us, promoted.Type(), m.To)

	default: // Quiet, Capture
		if captured := p.removePiece(m.To); captured != NoPiece {
			p.Hash = HashPieceToggle(p.Hash, them, captured.Type(), m.To)
		}
		p.removePiece(m.From)
		p.setPiece(piece, m.To)
		p.Hash = HashPieceMove(p.Hash, us, pt, m.From, m.To)
	}

	// Castling rights: revoked by king or rook departure and by captures on
	// rook home squares.
	p.CastlingRights &^= castleRevoke[m.From] | castleRevoke[m.To]
	p.Hash = HashCastlingRights(p.Hash, oldRights, p.CastlingRights)

	// En passant target: cleared, then re-set only on a pawn double push.
	p.EnPassant = NoSquare
	if pt == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		p.EnPassant = MustSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}
	p.Hash = HashEnPassant(p.Hash, oldEP, p.EnPassant)

	// Halfmove clock zeroes on any capture or pawn move.
	if pt == Pawn || m.Kind.IsCapture() {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	p.SideToMove = them
	p.Hash = HashSideToMove(p.Hash)
	if p.SideToMove == White {
		p.FullMoveNumber++
	}
}
