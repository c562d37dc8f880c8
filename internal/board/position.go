package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle reports whether the given side still holds the right for the
// given wing.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position: a mailbox board (one slot
// per square) plus game state. Positions are mutated in place by MakeMove;
// speculative exploration clones first via Copy.
type Position struct {
	// Squares maps each square to its occupant, NoPiece if empty.
	Squares [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // en passant target square, NoSquare if none
	HalfMoveClock  int    // moves since last pawn move or capture (fifty-move rule)
	FullMoveNumber int    // starts at 1, increments after Black moves

	// Hash is the Zobrist hash, maintained incrementally by MakeMove.
	Hash uint64
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates an independent copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Squares[sq]
}

// IsEmpty reports whether the square is unoccupied.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Squares[sq] == NoPiece
}

// KingSquare returns the square of the given color's king via a linear scan,
// or NoSquare if that king is absent (callers may construct such boards).
func (p *Position) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := A1; sq <= H8; sq++ {
		if p.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// setPiece places a piece on a square (does not update the hash).
func (p *Position) setPiece(piece Piece, sq Square) {
	p.Squares[sq] = piece
}

// removePiece empties a square and returns its former occupant
// (does not update the hash).
func (p *Position) removePiece(sq Square) Piece {
	piece := p.Squares[sq]
	p.Squares[sq] = NoPiece
	return piece
}

// Material returns the material balance in centipawns, positive for White.
// Kings are excluded.
func (p *Position) Material() int {
	score := 0
	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece || piece.Type() == King {
			continue
		}
		if piece.Color() == White {
			score += piece.Value()
		} else {
			score -= piece.Value()
		}
	}
	return score
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	for sq := A1; sq <= H8; sq++ {
		p.Squares[sq] = NoPiece
	}
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.Squares[MustSquare(file, rank)]
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", p.Hash)
	return s
}
