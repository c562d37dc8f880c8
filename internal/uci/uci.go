// Package uci adapts the engine to the Universal Chess Interface protocol.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
	"github.com/orielsanchez/chess-engine-sub000/internal/book"
	"github.com/orielsanchez/chess-engine-sub000/internal/engine"
	"github.com/orielsanchez/chess-engine-sub000/internal/storage"
)

// UCI implements the UCI protocol on top of the engine. Searches run
// synchronously: the engine has a fixed depth and no stop mechanism, so
// "go" answers when the search completes.
type UCI struct {
	engine   *engine.Engine
	position *board.Position
	book     *book.Book
	store    *storage.Storage

	in  io.Reader
	out io.Writer
}

// New creates a UCI handler reading stdin and writing stdout.
func New(eng *engine.Engine) *UCI {
	return &UCI{
		engine:   eng,
		position: board.NewPosition(),
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetIO redirects the protocol streams, used by tests.
func (u *UCI) SetIO(in io.Reader, out io.Writer) {
	u.in = in
	u.out = out
}

// SetBook attaches an opening book consulted before searching.
func (u *UCI) SetBook(b *book.Book) {
	u.book = b
}

// SetStorage attaches a persistent analysis cache consulted before searching
// and updated after.
func (u *UCI) SetStorage(s *storage.Storage) {
	u.store = s
}

// Run reads commands until "quit" or EOF.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(u.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.printf("readyok\n")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "eval":
			u.printf("info string eval cp %d\n", u.engine.Evaluate(u.position))
		case "d":
			u.printf("%s\n", u.position)
			u.printf("fen: %s\n", u.position.ToFEN())
			u.printf("hash: %016x\n", u.position.Hash)
		case "perft":
			u.handlePerft(args)
		case "quit":
			return
		}
	}
}

func (u *UCI) printf(format string, a ...any) {
	fmt.Fprintf(u.out, format, a...)
}

func (u *UCI) handleUCI() {
	u.printf("id name chesscore\n")
	u.printf("id author chesscore authors\n")
	u.printf("\n")
	u.printf("option name Hash type spin default 64 min 1 max 4096\n")
	u.printf("option name Depth type spin default %d min 1 max 8\n", u.engine.Depth())
	u.printf("uciok\n")
}

func (u *UCI) handleNewGame() {
	u.engine.NewGame()
	u.position = board.NewPosition()
}

// handlePosition parses "position startpos|fen <fen> [moves ...]".
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesIdx := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesIdx = i
			break
		}
	}

	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
	case "fen":
		pos, err := board.ParseFEN(strings.Join(args[1:movesIdx], " "))
		if err != nil {
			log.Printf("invalid fen: %v", err)
			return
		}
		u.position = pos
	default:
		return
	}

	moveStart := movesIdx + 1
	if moveStart > len(args) {
		moveStart = len(args)
	}
	for _, moveStr := range args[moveStart:] {
		move := u.matchLegalMove(moveStr)
		if move == board.NoMove {
			log.Printf("invalid move: %s", moveStr)
			return
		}
		u.position.MakeMove(move)
	}
}

// matchLegalMove resolves a UCI move string against the current position's
// legal moves.
func (u *UCI) matchLegalMove(moveStr string) board.Move {
	want, err := board.ParseMove(moveStr, u.position)
	if err != nil {
		return board.NoMove
	}

	for _, m := range u.position.GenerateLegalMoves() {
		if m.From == want.From && m.To == want.To &&
			m.Kind.PromotionPiece() == want.Kind.PromotionPiece() {
			return m
		}
	}
	return board.NoMove
}

// handleGo answers "go [depth N]". The book and the persistent cache are
// consulted before the engine searches.
func (u *UCI) handleGo(args []string) {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if depth, err := strconv.Atoi(args[i+1]); err == nil && depth > 0 {
				u.engine.SetDepth(depth)
			}
		}
	}

	if u.book != nil {
		if move, found := u.book.Probe(u.position); found {
			u.printf("info string book move\n")
			u.printf("bestmove %s\n", move)
			return
		}
	}

	if u.store != nil {
		if a, ok, err := u.store.LoadAnalysis(u.position.Hash); err == nil && ok &&
			a.Depth >= u.engine.Depth() && u.matchLegalMove(a.BestMove) != board.NoMove {
			u.printf("info depth %d score cp %d string cached\n", a.Depth, u.relativeScore(a.Score))
			u.printf("bestmove %s\n", a.BestMove)
			return
		}
	}

	analysis, err := u.engine.Analyze(u.position)
	if errors.Is(err, engine.ErrNoLegalMoves) {
		u.printf("info string no legal moves\n")
		u.printf("bestmove (none)\n")
		return
	}
	if err != nil {
		log.Printf("search failed: %v", err)
		return
	}

	u.printf("info depth %d score cp %d nodes %d time %d\n",
		analysis.Depth, u.relativeScore(analysis.Score), analysis.Nodes,
		analysis.Time.Milliseconds())
	u.printf("bestmove %s\n", analysis.BestMove)

	if u.store != nil && !analysis.Cached {
		err := u.store.SaveAnalysis(u.position.Hash, &storage.Analysis{
			BestMove: analysis.BestMove.String(),
			Score:    analysis.Score,
			Depth:    analysis.Depth,
			Nodes:    analysis.Nodes,
			Elapsed:  analysis.Time,
		})
		if err != nil {
			log.Printf("cache write failed: %v", err)
		}
	}
}

// relativeScore converts a White-relative score to the side-to-move-relative
// score UCI expects.
func (u *UCI) relativeScore(score int) int {
	if u.position.SideToMove == board.Black {
		return -score
	}
	return score
}

// handlePerft answers "perft N" with per-move counts and a total.
func (u *UCI) handlePerft(args []string) {
	depth := 1
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil && d > 0 {
			depth = d
		}
	}

	start := time.Now()
	divide := engine.PerftDivide(u.position, depth)

	var total uint64
	for _, m := range u.position.GenerateLegalMoves() {
		u.printf("%s: %d\n", m, divide[m.String()])
		total += divide[m.String()]
	}
	u.printf("\nNodes searched: %d (%.3fs)\n", total, time.Since(start).Seconds())
}
