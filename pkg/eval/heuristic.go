package eval

import "github.com/arnegrim/quoridor/pkg/board"

// unreachable stands in for an infinite BFS distance. Large but finite, so
// arithmetic on Components never needs a special "no path" case; in practice every
// board produced by board.ApplyMove always leaves both players a path (spec I5), so
// this only guards against degenerate boards constructed outside that invariant.
const unreachable = 1000

// Components bundles the named heuristic inputs spec §4.5 builds every policy and
// evaluator from: shortest-path distances and remaining wall counts for both sides.
type Components struct {
	DistMe, DistOpp     int
	ReachableMe, ReachableOpp bool
	WallsMe, WallsOpp   int
}

// Measure computes the heuristic components for player p on board b.
func Measure(b *board.Board, p board.Player) Components {
	opp := p.Opponent()
	distMe, okMe := b.ShortestPath(p)
	distOpp, okOpp := b.ShortestPath(opp)
	return Components{
		DistMe: clamp(distMe, okMe), ReachableMe: okMe,
		DistOpp: clamp(distOpp, okOpp), ReachableOpp: okOpp,
		WallsMe: b.WallsLeft(p), WallsOpp: b.WallsLeft(opp),
	}
}

func clamp(d int, ok bool) int {
	if !ok {
		return unreachable
	}
	return d
}

// Evaluator is a static position evaluator: higher is better for p (spec §4.5).
type Evaluator interface {
	Evaluate(b *board.Board, p board.Player) Score
}

// Balanced implements the Balanced heuristic's scoring function (spec §4.5):
// alpha*(dist_opp - dist_me) - beta*walls_me_spent. It also serves as the Balanced
// AI strategy when wrapped in BalancedPolicy.
type Balanced struct {
	Alpha, Beta Score
}

// DefaultBalanced returns the Balanced weights spec §4.5 specifies: alpha=3, beta=1.
func DefaultBalanced() Balanced {
	return Balanced{Alpha: 3, Beta: 1}
}

func (h Balanced) Evaluate(b *board.Board, p board.Player) Score {
	c := Measure(b, p)
	spent := b.WallsPerPlayer() - c.WallsMe
	return h.Alpha*Score(c.DistOpp-c.DistMe) - h.Beta*Score(spent)
}

// MinimaxEval implements Minimax-d's leaf evaluator (spec §4.6.1):
// dist_opp - dist_me + 0.5*(walls_me - walls_opp). Internally scaled x2 so the 0.5
// coefficient stays exact with an integer Score; callers only ever compare scores
// against siblings from the same search, so the common scale is immaterial.
type MinimaxEval struct{}

func (MinimaxEval) Evaluate(b *board.Board, p board.Player) Score {
	c := Measure(b, p)
	return Score(2*(c.DistOpp-c.DistMe) + (c.WallsMe - c.WallsOpp))
}
