package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/eval"
)

const (
	defaultAnnealCooling    = 0.95
	defaultAnnealIterations = 200
	annealFloor             = 0.01
)

// SimulatedAnnealing picks the active player's move by annealing over the set of
// legal moves, using the negative Balanced score as energy (lower is better) and a
// geometric cooling schedule. The four named strategies
// SimulatedAnnealing0.5/1.0/1.5/2.0 (spec §6) differ only by starting temperature.
type SimulatedAnnealing struct {
	Temperature float64
	Cooling     float64 // 0 means the default 0.95
	Iterations  int     // 0 means the default 200
	Rand        *rand.Rand
}

func (s SimulatedAnnealing) Search(ctx context.Context, b *board.Board) (board.Move, PV) {
	start := time.Now()
	rnd := s.rand()
	moves := eval.LegalMoves(b)
	if len(moves) == 0 {
		return board.Move{}, PV{}
	}

	cur := moves[rnd.Intn(len(moves))]
	curE := energy(b, cur)
	best, bestE := cur, curE

	temp := s.temperature()
	cooling := s.cooling()
	nodes := 0
	for i := 0; i < s.iterations() && temp > annealFloor; i++ {
		if contextx.IsCancelled(ctx) {
			break
		}
		nodes++
		cand := moves[rnd.Intn(len(moves))]
		candE := energy(b, cand)

		if candE < curE || rnd.Float64() < math.Exp((curE-candE)/temp) {
			cur, curE = cand, candE
			if curE < bestE {
				best, bestE = cur, curE
			}
		}
		temp *= cooling
	}

	return best, PV{Move: best, Score: eval.Score(-bestE), Nodes: nodes, Elapsed: time.Since(start)}
}

// energy is the negative Balanced score of applying m for the active player, so
// lower energy means a more favorable move under simulated annealing's
// minimization convention.
func energy(b *board.Board, m board.Move) float64 {
	me := b.Turn()
	trial := b.Clone()
	trial.ApplyMove(m)
	return -float64(eval.DefaultBalanced().Evaluate(trial, me))
}

func (s SimulatedAnnealing) rand() *rand.Rand {
	if s.Rand != nil {
		return s.Rand
	}
	return rand.New(rand.NewSource(1))
}

func (s SimulatedAnnealing) temperature() float64 {
	if s.Temperature <= 0 {
		return 1.0
	}
	return s.Temperature
}

func (s SimulatedAnnealing) cooling() float64 {
	if s.Cooling <= 0 {
		return defaultAnnealCooling
	}
	return s.Cooling
}

func (s SimulatedAnnealing) iterations() int {
	if s.Iterations <= 0 {
		return defaultAnnealIterations
	}
	return s.Iterations
}
