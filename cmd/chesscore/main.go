package main

import (
	"flag"
	"log"
	"os"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
	"github.com/orielsanchez/chess-engine-sub000/internal/book"
	"github.com/orielsanchez/chess-engine-sub000/internal/engine"
	"github.com/orielsanchez/chess-engine-sub000/internal/storage"
	"github.com/orielsanchez/chess-engine-sub000/internal/tablebase"
	"github.com/orielsanchez/chess-engine-sub000/internal/uci"
)

var (
	fen      = flag.String("fen", board.StartFEN, "position to operate on")
	depth    = flag.Int("depth", 4, "search depth")
	hashMB   = flag.Int("hash", 64, "transposition table size in MB")
	bookPath = flag.String("book", "", "Polyglot opening book file")
	useCache = flag.Bool("cache", false, "persist analysis results on disk")
	useTB    = flag.Bool("tablebase", false, "probe the Lichess endgame tablebase at leaf nodes")

	perftDepth = flag.Int("perft", 0, "run perft to the given depth and exit")
	drawRun    = flag.Bool("draw", false, "draw the position and exit")
	analyzeRun = flag.Bool("analyze", false, "analyze the position and exit")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if err := realMain(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func realMain() error {
	pos, err := board.ParseFEN(*fen)
	if err != nil {
		return err
	}

	if *perftDepth > 0 {
		return perft(pos, *perftDepth)
	}
	if *drawRun {
		return draw(pos)
	}

	eng := engine.NewEngine(*depth, *hashMB)

	if *useTB {
		prober := tablebase.NewCachedLichessProber()
		eng.SetEvaluator(tablebase.NewEvaluator(prober, engine.MaterialEvaluator{}))
	}

	if *analyzeRun {
		return analyze(eng, pos)
	}

	return runUCI(eng)
}

func runUCI(eng *engine.Engine) error {
	u := uci.New(eng)

	if *bookPath != "" {
		b, err := book.LoadPolyglot(*bookPath)
		if err != nil {
			return err
		}
		log.Printf("loaded book with %d positions", b.Size())
		u.SetBook(b)
	}

	if *useCache {
		store, err := storage.NewStorage()
		if err != nil {
			return err
		}
		defer store.Close()
		u.SetStorage(store)
	}

	u.Run()
	return nil
}
