package search

import (
	"context"
	"time"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/eval"
)

// Minimax is negamax search with alpha-beta pruning to a fixed ply depth (spec
// §4.6.1), using eval.MinimaxEval as the leaf evaluator and OrderMoves for move
// ordering, grounded on the teacher's pkg/search/alphabeta.go.
type Minimax struct {
	Depth int
}

func (m Minimax) Search(ctx context.Context, b *board.Board) (board.Move, PV) {
	start := time.Now()
	moves := OrderMoves(b)
	if len(moves) == 0 {
		return board.Move{}, PV{}
	}

	nodes := 0
	best := moves[0]
	bestScore := eval.MinScore - 1
	alpha, beta := eval.MinScore, eval.MaxScore

	for _, mv := range moves {
		child := b.Clone()
		child.ApplyMove(mv)
		s := eval.IncrementMateDistance(negamax(ctx, child, m.depth()-1, beta.Negate(), alpha.Negate(), &nodes).Negate())
		if s > bestScore {
			bestScore, best = s, mv
		}
		if s > alpha {
			alpha = s
		}
		if contextx.IsCancelled(ctx) {
			break
		}
	}
	return best, PV{Move: best, Score: bestScore, Nodes: nodes, Elapsed: time.Since(start)}
}

func (m Minimax) depth() int {
	if m.Depth <= 0 {
		return 1
	}
	return m.Depth
}

// negamax returns the score of b from the perspective of the player to move at b.
// Terminal detection short-circuits with a max-magnitude score offset by remaining
// depth via IncrementMateDistance, so search prefers faster wins and slower losses
// (spec §4.6.1). Checks ctx cancellation at every node the way the teacher's
// pkg/search/alphabeta.go does, even though spec §5 treats the depth budget as
// the only required self-cancellation: an external ctx cancellation just unwinds
// the recursion early via the depth-0 leaf evaluator.
func negamax(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score, nodes *int) eval.Score {
	*nodes++

	if r := b.Result(); r.Terminal {
		if r.Winner == b.Turn() {
			return eval.MaxScore
		}
		return eval.MinScore
	}
	if depth <= 0 || contextx.IsCancelled(ctx) {
		return eval.MinimaxEval{}.Evaluate(b, b.Turn())
	}

	best := eval.MinScore - 1
	for _, mv := range OrderMoves(b) {
		child := b.Clone()
		child.ApplyMove(mv)
		s := eval.IncrementMateDistance(negamax(ctx, child, depth-1, beta.Negate(), alpha.Negate(), nodes).Negate())
		if s > best {
			best = s
		}
		if s > alpha {
			alpha = s
		}
		if alpha >= beta {
			break
		}
		if contextx.IsCancelled(ctx) {
			break
		}
	}
	return best
}
