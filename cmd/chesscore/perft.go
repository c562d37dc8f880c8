package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
	"github.com/orielsanchez/chess-engine-sub000/internal/engine"
)

func perft(pos *board.Position, depth int) error {
	log.Printf("============ perft(%d)\n", depth)

	start := time.Now()
	divide := engine.PerftDivide(pos, depth)

	var nodes uint64
	for _, m := range pos.GenerateLegalMoves() {
		fmt.Printf("%s: %d\n", m, divide[m.String()])
		nodes += divide[m.String()]
	}
	elapsed := time.Since(start)

	log.Println(message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/elapsed.Seconds()), elapsed.Seconds()))
	return nil
}

func analyze(eng *engine.Engine, pos *board.Position) error {
	result, err := eng.Analyze(pos)
	if err != nil {
		return err
	}

	fmt.Println(message.NewPrinter(language.English).
		Sprintf("bestmove=%s score=%d depth=%d nodes=%d (%.3fs elapsed)",
			result.BestMove, result.Score, result.Depth, result.Nodes,
			result.Time.Seconds()))
	return nil
}
