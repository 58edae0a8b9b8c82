package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/checkers/game"
)

func movegen(fen string) error {
	log.Println("============ movegen")
	g, err := game.NewGame(game.WithFEN(fen))
	if err != nil {
		return err
	}
	b := g.Board()
	fmt.Println("to move:", g.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())
	fmt.Println(g.State())
	dumpMoves(g)
	return nil
}

func dumpMoves(g *game.Game) {
	mvs := g.LegalMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] %s %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, mv.IsSide, mv.Piece, mv.From, mv.To, mv.IsCapture)
	}
}
