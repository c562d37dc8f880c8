package book

import (
	"encoding/binary"
	"io"
	"math/rand"
	"os"
	"sort"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// BookEntry is a single book move with its selection weight.
type BookEntry struct {
	Move   board.Move
	Weight uint16
}

// Book is an opening book keyed by Polyglot position hash.
type Book struct {
	entries map[uint64][]BookEntry
}

// New creates an empty book.
func New() *Book {
	return &Book{
		entries: make(map[uint64][]BookEntry),
	}
}

// LoadPolyglot loads a Polyglot format opening book from a file.
func LoadPolyglot(filename string) (*Book, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadPolyglotReader(file)
}

// LoadPolyglotReader loads a Polyglot format book from a reader.
func LoadPolyglotReader(r io.Reader) (*Book, error) {
	book := New()

	// Polyglot entry format:
	// 8 bytes: position key (big-endian)
	// 2 bytes: move (big-endian)
	// 2 bytes: weight (big-endian)
	// 4 bytes: learn data (ignored)
	var entry [16]byte

	for {
		_, err := io.ReadFull(r, entry[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		key := binary.BigEndian.Uint64(entry[0:8])
		moveData := binary.BigEndian.Uint16(entry[8:10])
		weight := binary.BigEndian.Uint16(entry[10:12])

		book.entries[key] = append(book.entries[key], BookEntry{
			Move:   decodePolyglotMove(moveData),
			Weight: weight,
		})
	}

	return book, nil
}

// decodePolyglotMove converts a Polyglot move encoding to a Move. The kind
// is provisional (the book does not see the board); Probe resolves it
// against the actual legal moves.
// Polyglot move format (bits):
// 0-5: to square
// 6-11: from square
// 12-14: promotion piece (0=none, 1=knight, 2=bishop, 3=rook, 4=queen)
func decodePolyglotMove(data uint16) board.Move {
	toFile := int(data & 7)
	toRank := int((data >> 3) & 7)
	fromFile := int((data >> 6) & 7)
	fromRank := int((data >> 9) & 7)
	promo := (data >> 12) & 7

	from := board.MustSquare(fromFile, fromRank)
	to := board.MustSquare(toFile, toRank)

	// Polyglot encodes castling as king-captures-rook; convert to the
	// king-moves-two-squares convention.
	switch {
	case from == board.E1 && to == board.H1:
		to = board.G1
	case from == board.E1 && to == board.A1:
		to = board.C1
	case from == board.E8 && to == board.H8:
		to = board.G8
	case from == board.E8 && to == board.A8:
		to = board.C8
	}

	kind := board.Quiet
	if promo >= 1 && promo <= 4 {
		// 1=knight, 2=bishop, 3=rook, 4=queen, matching the kind order.
		kind = board.PromoteKnight + board.MoveKind(promo-1)
	}

	return board.Move{From: from, To: to, Kind: kind}
}

// Probe looks up a position and returns a legal book move using weighted
// random selection.
func (b *Book) Probe(pos *board.Position) (board.Move, bool) {
	if b == nil {
		return board.NoMove, false
	}

	key := pos.PolyglotHash()
	entries, ok := b.entries[key]
	if !ok || len(entries) == 0 {
		return board.NoMove, false
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Weight > entries[j].Weight
	})

	totalWeight := uint32(0)
	for _, e := range entries {
		totalWeight += uint32(e.Weight)
	}

	if totalWeight > 0 {
		r := rand.Uint32() % totalWeight
		cumulative := uint32(0)
		for _, e := range entries {
			cumulative += uint32(e.Weight)
			if r < cumulative {
				if m := verifyAndConvert(pos, e.Move); m != board.NoMove {
					return m, true
				}
				break
			}
		}
	}

	// All weights zero, or the drawn entry was not legal here; fall back to
	// the heaviest entry.
	if m := verifyAndConvert(pos, entries[0].Move); m != board.NoMove {
		return m, true
	}
	return board.NoMove, false
}

// ProbeAll returns all book entries for the position, sorted by weight.
func (b *Book) ProbeAll(pos *board.Position) []BookEntry {
	if b == nil {
		return nil
	}

	entries, ok := b.entries[pos.PolyglotHash()]
	if !ok {
		return nil
	}

	result := make([]BookEntry, len(entries))
	copy(result, entries)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Weight > result[j].Weight
	})

	return result
}

// verifyAndConvert matches a decoded book move against the position's legal
// moves, returning the legal move with its real kind (capture, castle, en
// passant) or NoMove if the book move is not legal here.
func verifyAndConvert(pos *board.Position, move board.Move) board.Move {
	for _, lm := range pos.GenerateLegalMoves() {
		if lm.From != move.From || lm.To != move.To {
			continue
		}
		if lm.Kind.PromotionPiece() == move.Kind.PromotionPiece() {
			return lm
		}
	}
	return board.NoMove
}

// Size returns the number of unique positions in the book.
func (b *Book) Size() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
