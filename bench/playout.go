package bench

import (
	"github.com/daystram/checkers/game"
)

// Playout plays uniformly random legal moves on g until the game ends or maxPlies legs were applied.
// onMove, if set, is called after every leg. It returns the number of legs applied.
func Playout(g *game.Game, r *PseudoRand, maxPlies int, onMove func(game.MoveResult)) (int, error) {
	plies := 0
	for ; plies < maxPlies && g.State().IsRunning(); plies++ {
		mvs := g.LegalMoves()
		res, err := g.Apply(mvs[r.Intn(len(mvs))])
		if err != nil {
			return plies, err
		}
		if onMove != nil {
			onMove(res)
		}
	}
	return plies, nil
}
