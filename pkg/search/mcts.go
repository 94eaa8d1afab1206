package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/eval"
)

const uctC = math.Sqrt2

// mctsNode is one arena-indexed MCTS tree node (spec §9: "an arena of nodes keyed
// by integer index, children stored as index lists"), avoiding reference cycles
// and making the tree cheap to discard once the search returns.
type mctsNode struct {
	parent   int // -1 for the root
	children []int
	move     board.Move   // the move that produced this node from its parent
	mover    board.Player // the player to move at this node
	untried  []board.Move
	visits   int
	total    float64 // sum of rewards from this node's own player's perspective
	terminal bool
	board    *board.Board
}

func newMCTSNode(parent int, move board.Move, mover board.Player, b *board.Board) mctsNode {
	return mctsNode{
		parent:  parent,
		move:    move,
		mover:   mover,
		untried: eval.LegalMoves(b),
		board:   b,
	}
}

// MCTS is UCT Monte Carlo tree search (spec §4.6.2). Set Iterations, Budget, or
// both; whichever is exhausted first stops the search, following the teacher's
// lang.Optional[T]-typed budget fields (pkg/search/searchctl.Options'
// DepthLimit/TimeControl) rather than an int/time.Duration zero-means-unset
// sentinel. Grounded on the teacher pack's reference MCTS implementations
// (hiveGo/hexxagon internal-searchers).
type MCTS struct {
	Iterations lang.Optional[int]
	Budget     lang.Optional[time.Duration]
	PlayoutCap int // 0 means the spec default of 2*N^2
	Rand       *rand.Rand
}

func (m MCTS) Search(ctx context.Context, root *board.Board) (board.Move, PV) {
	start := time.Now()
	rnd := m.rand()
	playoutCap := m.playoutCap(root.N())

	maxIter, hasMaxIter := m.Iterations.V()

	var deadline time.Time
	if budget, ok := m.Budget.V(); ok && budget > 0 {
		deadline = time.Now().Add(budget)
	}

	nodes := []mctsNode{newMCTSNode(-1, board.Move{}, root.Turn(), root)}
	iter := 0
	for {
		if hasMaxIter && iter >= maxIter {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		// Checked once per iteration boundary, never inside the playout loop
		// itself (spec §5: "Time-bounded MCTS MUST check the clock at every
		// simulation boundary, not inside playout loops").
		if contextx.IsCancelled(ctx) {
			break
		}
		iter++

		idx := selectAndExpand(&nodes, rnd)
		reward := simulate(nodes[idx].board, nodes[idx].mover, playoutCap, rnd)
		backpropagate(nodes, idx, reward)
	}

	move, pv, found := rootChoice(nodes)
	if !found {
		// No child was ever expanded (budget exhausted on iteration 0); fall back
		// to any legal move, matching every strategy's never-empty guarantee.
		move, _ = eval.RandomPolicy{}.Select(root, rnd)
		pv = PV{Move: move}
	}
	pv.Nodes = iter
	pv.Elapsed = time.Since(start)
	return move, pv
}

// rootChoice returns the root's child with the highest visit count, ties broken
// by Q (spec §4.6.2's "returns the child with the highest visit count ... ties
// broken by Q"). Q is negated from the child's own stored total: a child node's
// total is kept from its own mover's perspective (the opponent, one ply down),
// so the root's preference is the negation of that.
func rootChoice(nodes []mctsNode) (board.Move, PV, bool) {
	root := nodes[0]
	best := -1
	bestVisits := -1
	bestQ := math.Inf(-1)
	for _, c := range root.children {
		child := nodes[c]
		q := 0.0
		if child.visits > 0 {
			q = -child.total / float64(child.visits)
		}
		if child.visits > bestVisits || (child.visits == bestVisits && q > bestQ) {
			best, bestVisits, bestQ = c, child.visits, q
		}
	}
	if best == -1 {
		return board.Move{}, PV{}, false
	}
	return nodes[best].move, PV{Move: nodes[best].move, Score: eval.Score(bestQ * 1000)}, true
}

// selectAndExpand walks down from the root applying UCT selection while a node is
// fully expanded and non-terminal, then expands one untried move, mirroring spec
// §4.6.2 steps 1-2.
func selectAndExpand(nodes *[]mctsNode, rnd *rand.Rand) int {
	idx := 0
	for {
		n := (*nodes)[idx]
		if n.terminal {
			return idx
		}
		if len(n.untried) > 0 {
			return expand(nodes, idx, rnd)
		}
		if len(n.children) == 0 {
			return idx
		}
		idx = selectChild(*nodes, idx)
	}
}

func expand(nodes *[]mctsNode, idx int, rnd *rand.Rand) int {
	untried := (*nodes)[idx].untried
	i := rnd.Intn(len(untried))
	mv := untried[i]
	untried[i] = untried[len(untried)-1]
	(*nodes)[idx].untried = untried[:len(untried)-1]

	child := (*nodes)[idx].board.Clone()
	child.ApplyMove(mv)
	mover := child.Turn()

	newNode := newMCTSNode(idx, mv, mover, child)
	newNode.terminal = child.Result().Terminal
	*nodes = append(*nodes, newNode)

	childIdx := len(*nodes) - 1
	(*nodes)[idx].children = append((*nodes)[idx].children, childIdx)
	return childIdx
}

// selectChild picks the child maximizing Q + c*sqrt(ln(N_parent)/n_child), ties
// broken by higher Q (spec §4.6.2 step 1). A child's stored total is kept from
// its own mover's perspective -- the opponent of the parent we're selecting
// for -- so Q here is the negation of the child's raw average, the same
// perspective flip negamax applies at every ply.
func selectChild(nodes []mctsNode, idx int) int {
	parent := nodes[idx]
	logN := math.Log(float64(parent.visits))

	best := parent.children[0]
	bestU, bestQ := math.Inf(-1), math.Inf(-1)
	for _, c := range parent.children {
		child := nodes[c]
		var u, q float64
		if child.visits == 0 {
			u = math.Inf(1)
		} else {
			q = -child.total / float64(child.visits)
			u = q + uctC*math.Sqrt(logN/float64(child.visits))
		}
		if u > bestU || (u == bestU && q > bestQ) {
			bestU, bestQ, best = u, q, c
		}
	}
	return best
}

// simulate plays a random-but-shortest-path rollout from b for both sides (spec
// §4.6.2 step 3, resolving the "MCTS playout policy bias" open question by using
// ShortestPath for both sides) until a pawn reaches its goal row or playoutCap
// plies are played, then resolves by sign(dist_opp - dist_me). Returns the reward
// from mover's perspective.
func simulate(b *board.Board, mover board.Player, playoutCap int, rnd *rand.Rand) float64 {
	sim := b.Clone()
	sp := eval.ShortestPathPolicy{}

	for ply := 0; ply < playoutCap; ply++ {
		if r := sim.Result(); r.Terminal {
			break
		}
		mv, err := sp.Select(sim, rnd)
		if err != nil {
			break
		}
		sim.ApplyMove(mv)
	}

	if r := sim.Result(); r.Terminal {
		if r.Winner == mover {
			return 1
		}
		return -1
	}

	distMe, okMe := sim.ShortestPath(mover)
	distOpp, okOpp := sim.ShortestPath(mover.Opponent())
	dMe, dOpp := clampDist(distMe, okMe), clampDist(distOpp, okOpp)
	switch {
	case dOpp > dMe:
		return 1
	case dOpp < dMe:
		return -1
	default:
		return 0
	}
}

// backpropagate increments visits and adds the reward (sign-flipped at every other
// level, since players alternate) from the expanded node up to the root (spec
// §4.6.2 step 4).
func backpropagate(nodes []mctsNode, idx int, reward float64) {
	mover := nodes[idx].mover
	for i := idx; i != -1; i = nodes[i].parent {
		nodes[i].visits++
		if nodes[i].mover == mover {
			nodes[i].total += reward
		} else {
			nodes[i].total -= reward
		}
	}
}

func (m MCTS) rand() *rand.Rand {
	if m.Rand != nil {
		return m.Rand
	}
	return rand.New(rand.NewSource(1))
}

func (m MCTS) playoutCap(n int) int {
	if m.PlayoutCap > 0 {
		return m.PlayoutCap
	}
	return 2 * n * n
}
