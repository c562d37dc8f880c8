package tablebase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// LichessProber uses the Lichess tablebase API for online lookups.
// It needs network access and is rate limited; wrap it in a CachedProber
// for anything beyond occasional root probes.
type LichessProber struct {
	client    *http.Client
	baseURL   string
	maxPieces int
}

// NewLichessProber creates a Lichess-backed tablebase prober.
func NewLichessProber() *LichessProber {
	return &LichessProber{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL:   "https://tablebase.lichess.ovh",
		maxPieces: 7, // Lichess serves up to 7-piece tables
	}
}

type lichessResponse struct {
	Category string `json:"category"` // "win", "draw", "maybe-win", "maybe-draw", "loss"
	DTZ      int    `json:"dtz"`
	Moves    []struct {
		UCI      string `json:"uci"`
		Category string `json:"category"`
		DTZ      int    `json:"dtz"`
	} `json:"moves"`
}

// fetch queries the API; any network or decode failure reads as "not found".
func (lp *LichessProber) fetch(pos *board.Position) (lichessResponse, bool) {
	// Lichess wants FEN spaces as underscores.
	fen := strings.ReplaceAll(pos.ToFEN(), " ", "_")

	url := fmt.Sprintf("%s/standard?fen=%s", lp.baseURL, fen)
	resp, err := lp.client.Get(url)
	if err != nil {
		return lichessResponse{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return lichessResponse{}, false
	}

	var result lichessResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return lichessResponse{}, false
	}
	return result, true
}

func (lp *LichessProber) Probe(pos *board.Position) ProbeResult {
	if CountPieces(pos) > lp.maxPieces {
		return ProbeResult{Found: false}
	}

	result, ok := lp.fetch(pos)
	if !ok {
		return ProbeResult{Found: false}
	}

	return ProbeResult{
		Found: true,
		WDL:   categoryToWDL(result.Category),
		DTZ:   result.DTZ,
	}
}

func (lp *LichessProber) ProbeRoot(pos *board.Position) RootResult {
	if CountPieces(pos) > lp.maxPieces {
		return RootResult{Found: false}
	}

	result, ok := lp.fetch(pos)
	if !ok || len(result.Moves) == 0 {
		return RootResult{Found: false}
	}

	// Lichess orders moves best-first.
	best := result.Moves[0]
	move := matchLegalMove(pos, best.UCI)
	if move == board.NoMove {
		return RootResult{Found: false}
	}

	return RootResult{
		Found: true,
		Move:  move,
		WDL:   categoryToWDL(best.Category),
		DTZ:   best.DTZ,
	}
}

func (lp *LichessProber) MaxPieces() int {
	return lp.maxPieces
}

func (lp *LichessProber) Available() bool {
	return true // as available as the network is
}

func categoryToWDL(category string) WDL {
	switch category {
	case "win":
		return WDLWin
	case "maybe-win", "cursed-win":
		return WDLCursedWin
	case "draw", "maybe-draw":
		return WDLDraw
	case "blessed-loss":
		return WDLBlessedLoss
	case "loss":
		return WDLLoss
	default:
		return WDLDraw
	}
}

// matchLegalMove resolves a UCI move string to the position's matching legal
// move, or NoMove when it is not legal here.
func matchLegalMove(pos *board.Position, uci string) board.Move {
	want, err := board.ParseMove(uci, pos)
	if err != nil {
		return board.NoMove
	}

	for _, m := range pos.GenerateLegalMoves() {
		if m.From == want.From && m.To == want.To &&
			m.Kind.PromotionPiece() == want.Kind.PromotionPiece() {
			return m
		}
	}
	return board.NoMove
}
