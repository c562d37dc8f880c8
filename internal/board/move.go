package board

import "fmt"

// MoveKind tags how a move transforms the position. The kind alone decides
// whether a move captures, promotes, and which piece it promotes to, without
// consulting the board.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	EnPassantCapture
	CastleKingside
	CastleQueenside
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	PromoteCaptureKnight
	PromoteCaptureBishop
	PromoteCaptureRook
	PromoteCaptureQueen
)

// IsCapture reports whether the kind removes an enemy piece.
func (k MoveKind) IsCapture() bool {
	switch k {
	case Capture, EnPassantCapture,
		PromoteCaptureKnight, PromoteCaptureBishop, PromoteCaptureRook, PromoteCaptureQueen:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the kind promotes a pawn.
func (k MoveKind) IsPromotion() bool {
	return k >= PromoteKnight && k <= PromoteCaptureQueen
}

// IsCastle reports whether the kind is a castling move.
func (k MoveKind) IsCastle() bool {
	return k == CastleKingside || k == CastleQueenside
}

// PromotionPiece returns the piece type a promotion kind promotes to,
// or NoPieceType for non-promotion kinds.
func (k MoveKind) PromotionPiece() PieceType {
	switch k {
	case PromoteKnight, PromoteCaptureKnight:
		return Knight
	case PromoteBishop, PromoteCaptureBishop:
		return Bishop
	case PromoteRook, PromoteCaptureRook:
		return Rook
	case PromoteQueen, PromoteCaptureQueen:
		return Queen
	default:
		return NoPieceType
	}
}

// promotionKind returns the promotion kind for a promoted piece type.
func promotionKind(pt PieceType, capture bool) MoveKind {
	var k MoveKind
	switch pt {
	case Knight:
		k = PromoteKnight
	case Bishop:
		k = PromoteBishop
	case Rook:
		k = PromoteRook
	default:
		k = PromoteQueen
	}
	if capture {
		k += PromoteCaptureKnight - PromoteKnight
	}
	return k
}

// Move describes a transition between two squares. Moves are value types
// compared by (From, To, Kind) equality and are only meaningful for the
// position they were generated from.
type Move struct {
	From, To Square
	Kind     MoveKind
}

// NoMove is the zero Move, used as an "absent move" sentinel.
var NoMove = Move{}

// IsCapture reports whether the move captures.
func (m Move) IsCapture() bool { return m.Kind.IsCapture() }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Kind.IsPromotion() }

// String returns the UCI form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if pt := m.Kind.PromotionPiece(); pt != NoPieceType {
		promoChars := [4]byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[pt-Knight])
	}
	return s
}

// ParseMove parses a UCI move string ("e2e4", "e7e8q") and classifies its
// kind against the given position. The move is not legality-checked.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	capture := pos.PieceAt(to) != NoPiece

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return Move{From: from, To: to, Kind: promotionKind(promo, capture)}, nil
	}

	pt := piece.Type()
	if pt == King && abs(to.File()-from.File()) == 2 {
		if to.File() > from.File() {
			return Move{From: from, To: to, Kind: CastleKingside}, nil
		}
		return Move{From: from, To: to, Kind: CastleQueenside}, nil
	}
	if pt == Pawn && to == pos.EnPassant {
		return Move{From: from, To: to, Kind: EnPassantCapture}, nil
	}
	if capture {
		return Move{From: from, To: to, Kind: Capture}, nil
	}
	return Move{From: from, To: to, Kind: Quiet}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
