package board

// GeneratePseudoLegalMoves generates all moves obeying per-piece movement
// rules for the side to move. Moves that leave the own king in check are
// not filtered out; an empty result is valid, not an error.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 64)
	us := p.SideToMove

	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Type() {
		case Pawn:
			p.generatePawnMoves(&moves, sq, us)
		case Knight:
			p.generateOffsetMoves(&moves, sq, us, knightDeltas[:])
		case Bishop:
			p.generateSlidingMoves(&moves, sq, us, bishopDeltas[:])
		case Rook:
			p.generateSlidingMoves(&moves, sq, us, rookDeltas[:])
		case Queen:
			p.generateSlidingMoves(&moves, sq, us, bishopDeltas[:])
			p.generateSlidingMoves(&moves, sq, us, rookDeltas[:])
		case King:
			p.generateOffsetMoves(&moves, sq, us, kingDeltas[:])
			p.generateCastlingMoves(&moves, sq, us)
		}
	}

	return moves
}

// GenerateLegalMoves filters the pseudo-legal moves down to those that do
// not leave the mover's own king in check, by applying each candidate to a
// clone. An empty result means checkmate or stalemate; distinguishing the
// two is the caller's responsibility.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := pseudo[:0]
	us := p.SideToMove

	for _, m := range pseudo {
		next := p.Copy()
		next.MakeMove(m)
		if !next.InCheck(us) {
			legal = append(legal, m)
		}
	}

	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	return len(p.GenerateLegalMoves()) > 0
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.SideToMove) && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal moves but is not
// in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.SideToMove) && !p.HasLegalMoves()
}

// generatePawnMoves generates pushes, captures, en passant and promotions
// for the pawn on sq.
func (p *Position) generatePawnMoves(moves *[]Move, sq Square, us Color) {
	dir, homeRank, promoRank := 1, 1, 7
	if us == Black {
		dir, homeRank, promoRank = -1, 6, 0
	}

	// Single push, blocked by any occupant.
	if to := offset(sq, delta{0, dir}); to != NoSquare && p.IsEmpty(to) {
		if to.Rank() == promoRank {
			appendPromotions(moves, sq, to, false)
		} else {
			*moves = append(*moves, Move{From: sq, To: to, Kind: Quiet})

			// Double push, only from the home rank with both squares empty.
			if sq.Rank() == homeRank {
				if to2 := offset(sq, delta{0, 2 * dir}); to2 != NoSquare && p.IsEmpty(to2) {
					*moves = append(*moves, Move{From: sq, To: to2, Kind: Quiet})
				}
			}
		}
	}

	// Diagonal captures, including the recorded en passant target.
	for _, df := range [2]int{-1, 1} {
		to := offset(sq, delta{df, dir})
		if to == NoSquare {
			continue
		}
		if to == p.EnPassant {
			*moves = append(*moves, Move{From: sq, To: to, Kind: EnPassantCapture})
			continue
		}
		target := p.Squares[to]
		if target == NoPiece || target.Color() == us {
			continue
		}
		if to.Rank() == promoRank {
			appendPromotions(moves, sq, to, true)
		} else {
			*moves = append(*moves, Move{From: sq, To: to, Kind: Capture})
		}
	}
}

// appendPromotions emits the four promotion moves for a pawn reaching the
// far rank.
func appendPromotions(moves *[]Move, from, to Square, capture bool) {
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		*moves = append(*moves, Move{From: from, To: to, Kind: promotionKind(pt, capture)})
	}
}

// generateOffsetMoves generates fixed-offset moves (knight, king) onto
// squares that are empty or hold an enemy piece.
func (p *Position) generateOffsetMoves(moves *[]Move, sq Square, us Color, deltas []delta) {
	for _, d := range deltas {
		to := offset(sq, d)
		if to == NoSquare {
			continue
		}
		target := p.Squares[to]
		switch {
		case target == NoPiece:
			*moves = append(*moves, Move{From: sq, To: to, Kind: Quiet})
		case target.Color() != us:
			*moves = append(*moves, Move{From: sq, To: to, Kind: Capture})
		}
	}
}

// generateSlidingMoves ray-casts per direction until the board edge, an own
// piece (stop) or an enemy piece (capture, then stop).
func (p *Position) generateSlidingMoves(moves *[]Move, sq Square, us Color, deltas []delta) {
	for _, d := range deltas {
		for to := offset(sq, d); to != NoSquare; to = offset(to, d) {
			target := p.Squares[to]
			if target == NoPiece {
				*moves = append(*moves, Move{From: sq, To: to, Kind: Quiet})
				continue
			}
			if target.Color() != us {
				*moves = append(*moves, Move{From: sq, To: to, Kind: Capture})
			}
			break
		}
	}
}

// generateCastlingMoves attempts both wings for the king on sq. Each wing
// requires the right still held, all squares between king and rook empty,
// the king's start, transit and destination squares unattacked, and the
// side not currently in check; any violation silently omits the move.
func (p *Position) generateCastlingMoves(moves *[]Move, sq Square, us Color) {
	homeSq := E1
	if us == Black {
		homeSq = E8
	}
	if sq != homeSq {
		return
	}

	them := us.Other()
	if p.IsSquareAttacked(sq, them) {
		return
	}
	rook := NewPiece(Rook, us)

	// Kingside: f and g files empty, e/f/g unattacked, rook home on h.
	if p.CastlingRights.CanCastle(us, true) &&
		p.IsEmpty(sq+1) && p.IsEmpty(sq+2) &&
		p.Squares[sq+3] == rook &&
		!p.IsSquareAttacked(sq+1, them) && !p.IsSquareAttacked(sq+2, them) {
		*moves = append(*moves, Move{From: sq, To: sq + 2, Kind: CastleKingside})
	}

	// Queenside: b, c and d files empty, e/d/c unattacked, rook home on a.
	if p.CastlingRights.CanCastle(us, false) &&
		p.IsEmpty(sq-1) && p.IsEmpty(sq-2) && p.IsEmpty(sq-3) &&
		p.Squares[sq-4] == rook &&
		!p.IsSquareAttacked(sq-1, them) && !p.IsSquareAttacked(sq-2, them) {
		*moves = append(*moves, Move{From: sq, To: sq - 2, Kind: CastleQueenside})
	}
}
