package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
	coordStyle  = color.New(color.Bold)
)

// draw renders the position as a colored board, light and dark squares
// alternating, white pieces uppercase.
func draw(pos *board.Position) error {
	for rank := 7; rank >= 0; rank-- {
		coordStyle.Printf(" %d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.MustSquare(file, rank)
			cell := "   "
			if p := pos.PieceAt(sq); p != board.NoPiece {
				cell = fmt.Sprintf(" %s ", p)
			}
			if (file+rank)%2 == 0 {
				darkSquare.Print(cell)
			} else {
				lightSquare.Print(cell)
			}
		}
		fmt.Println()
	}

	coordStyle.Print("   ")
	for file := 0; file < 8; file++ {
		coordStyle.Printf(" %c ", 'a'+file)
	}
	fmt.Println()
	fmt.Println()
	fmt.Println("fen:", pos.ToFEN())
	fmt.Printf("hash: %016x\n", pos.Hash)
	return nil
}
