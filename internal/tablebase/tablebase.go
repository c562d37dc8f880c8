package tablebase

import (
	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// WDL represents a Win/Draw/Loss result from the side to move's perspective.
type WDL int

const (
	WDLLoss        WDL = -2
	WDLBlessedLoss WDL = -1 // Loss, but the 50-move rule may save it
	WDLDraw        WDL = 0
	WDLCursedWin   WDL = 1 // Win, but the 50-move rule may interfere
	WDLWin         WDL = 2
)

// ProbeResult contains the result of a tablebase probe.
type ProbeResult struct {
	Found bool
	WDL   WDL
	DTZ   int // Distance to zeroing move (pawn move or capture)
}

// RootResult contains the best move from the tablebase at a root position.
type RootResult struct {
	Found bool
	Move  board.Move
	WDL   WDL
	DTZ   int
}

// Prober is the interface for tablebase probing.
type Prober interface {
	// Probe looks up a position in the tablebase.
	Probe(pos *board.Position) ProbeResult

	// ProbeRoot finds the best move from the tablebase at the root
	// position. More expensive, as it needs per-move information.
	ProbeRoot(pos *board.Position) RootResult

	// MaxPieces returns the maximum number of pieces supported.
	MaxPieces() int

	// Available reports whether the tablebase can be consulted.
	Available() bool
}

// WDLToScore converts a WDL result to a search score for the side to move.
// Tablebase scores sit above mate scores so a known win always outranks a
// heuristic evaluation.
func WDLToScore(wdl WDL, ply int) int {
	const tbWin = 30000

	switch wdl {
	case WDLWin:
		return tbWin - ply
	case WDLCursedWin:
		return tbWin - 100 - ply
	case WDLDraw:
		return 0
	case WDLBlessedLoss:
		return -tbWin + 100 + ply
	case WDLLoss:
		return -tbWin + ply
	default:
		return 0
	}
}

// NoopProber always answers "not found". Use it when no tablebase is
// configured.
type NoopProber struct{}

func (NoopProber) Probe(pos *board.Position) ProbeResult {
	return ProbeResult{Found: false}
}

func (NoopProber) ProbeRoot(pos *board.Position) RootResult {
	return RootResult{Found: false}
}

func (NoopProber) MaxPieces() int {
	return 0
}

func (NoopProber) Available() bool {
	return false
}

// CountPieces returns the total number of pieces on the board.
func CountPieces(pos *board.Position) int {
	count := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		if !pos.IsEmpty(sq) {
			count++
		}
	}
	return count
}
