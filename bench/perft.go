package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/checkers/game"
)

// Stats counts perft nodes. Move flags are counted for the moves of the last ply only.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	Promotions uint64
	Chains     uint64
	GameOvers  uint64
}

func (s Stats) String() string {
	return message.NewPrinter(language.English).
		Sprintf("nodes=%d cap=%d pro=%d chn=%d end=%d", s.Nodes, s.Captures, s.Promotions, s.Chains, s.GameOvers)
}

// Perft counts the move legs reachable in exactly depth plies from fen. A leg of a capture chain counts as
// one ply. Per-root-move counts are sent to out when verbose, followed by a summary line.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) (Stats, error) {
	var st Stats
	g, err := game.NewGame(game.WithFEN(fen))
	if err != nil {
		return st, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(g, depth, true, verbose, out, &st)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d %s rate=%dn/s (%.3fs elapsed)", depth, st, nodeRate(st.Nodes, elapsed), elapsed.Seconds())
	}
	return st, nil
}

// nodeRate returns nodes per second, or 0 when no measurable time elapsed.
func nodeRate(nodes uint64, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(float64(nodes) / elapsed.Seconds())
}

type perftFunc func(g *game.Game, d int, root, verbose bool, out chan string, st *Stats) uint64

func runPerft(g *game.Game, d int, root, verbose bool, out chan string, st *Stats) uint64 {
	if d == 0 {
		st.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range g.LegalMoves() {
		gg := g.Clone()
		res, err := gg.Apply(mv)
		if err != nil {
			continue
		}
		if d == 1 {
			if res.WasCapture {
				st.Captures++
			}
			if res.Promoted {
				st.Promotions++
			}
			if res.ChainForced {
				st.Chains++
			}
			if res.GameOver != nil {
				st.GameOvers++
			}
		}
		child := runPerft(gg, d-1, false, verbose, out, st)
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv, child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(g *game.Game, d int, root, verbose bool, out chan string, st *Stats) uint64 {
	if d == 0 {
		atomic.AddUint64(&st.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range g.LegalMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			gg := g.Clone()
			res, err := gg.Apply(mv)
			if err != nil {
				return
			}
			if d == 1 {
				if res.WasCapture {
					atomic.AddUint64(&st.Captures, 1)
				}
				if res.Promoted {
					atomic.AddUint64(&st.Promotions, 1)
				}
				if res.ChainForced {
					atomic.AddUint64(&st.Chains, 1)
				}
				if res.GameOver != nil {
					atomic.AddUint64(&st.GameOvers, 1)
				}
			}
			child := runPerftParallel(gg, d-1, false, verbose, out, st)
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
