package main

import (
	"fmt"
	"log"
	"time"

	"github.com/daystram/checkers/bench"
	"github.com/daystram/checkers/game"
)

func step(fen string, seed uint64, plies int) error {
	log.Println("============ step")
	g, err := game.NewGame(game.WithFEN(fen))
	if err != nil {
		return err
	}

	var timesApply []time.Duration
	last := time.Now()
	n := 0
	_, err = bench.Playout(g, bench.NewPseudoRand(seed), plies, func(res game.MoveResult) {
		timesApply = append(timesApply, time.Since(last))
		n++
		fmt.Printf("\n===== [#%d] %s: %s\n", n, res.Move.IsSide, res.Move)
		b := g.Board()
		fmt.Println(b.Draw())
		fmt.Println(g.FEN())
		fmt.Println(b.DebugString())
		<-time.After(10 * time.Millisecond)
		last = time.Now()
	})
	if err != nil {
		return err
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(g.State(), g.GameOver())
	if g.State().IsOver() {
		fmt.Println("winner:", g.State().Winner())
	}
	fmt.Println(game.DumpHistory(g.History()))
	fmt.Println("apply:", avg(timesApply))
	return nil
}
