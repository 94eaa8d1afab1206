package eval

import (
	"errors"
	"math/rand"

	"github.com/arnegrim/quoridor/pkg/board"
)

// ErrNoLegalMoves is returned by a Policy when the active player has no legal move
// at all, which never happens on a board reachable through board.ApplyMove (spec
// I5 guarantees a path, and a path implies an adjacent cell) but is checked for
// defensively since a Policy may be handed an arbitrary board.
var ErrNoLegalMoves = errors.New("eval: no legal moves available")

// Policy selects a single move for the active player given a board (spec §4.5). The
// six named heuristic strategies (Random, ShortestPath, Defensive, Balanced,
// Adaptive, Mirror) are each a Policy; pkg/strategy wraps them alongside the
// search-based strategies behind one dispatch.
type Policy interface {
	Select(b *board.Board, rnd *rand.Rand) (board.Move, error)
}

// LegalMoves returns every legal move for the active player, pawn moves first.
func LegalMoves(b *board.Board) []board.Move {
	moves := append([]board.Move{}, b.LegalPawnMoves()...)
	return append(moves, b.LegalWalls()...)
}

// RandomPolicy picks uniformly among all legal pawn and wall moves (spec §4.5).
type RandomPolicy struct{}

func (RandomPolicy) Select(b *board.Board, rnd *rand.Rand) (board.Move, error) {
	moves := LegalMoves(b)
	if len(moves) == 0 {
		return board.Move{}, ErrNoLegalMoves
	}
	return moves[rnd.Intn(len(moves))], nil
}

// ShortestPathPolicy always advances the pawn along a shortest path to the goal
// row, breaking ties by preferring a forward step, then a sideways step toward the
// opponent's column, then any remaining move (spec §4.5).
type ShortestPathPolicy struct{}

func (ShortestPathPolicy) Select(b *board.Board, rnd *rand.Rand) (board.Move, error) {
	me := b.Turn()
	moves := b.LegalPawnMoves()
	if len(moves) == 0 {
		return board.Move{}, ErrNoLegalMoves
	}
	return bestShortestPathMove(b, me, moves), nil
}

func bestShortestPathMove(b *board.Board, me board.Player, moves []board.Move) board.Move {
	best := moves[0]
	bestDist, bestCat := -1, -1
	for _, m := range moves {
		trial := b.Clone()
		trial.ApplyMove(m)
		dist, ok := trial.ShortestPath(me)
		if !ok {
			dist = unreachable
		}
		cat := pawnMoveCategory(b, me, m)
		if bestDist == -1 || dist < bestDist || (dist == bestDist && cat < bestCat) {
			bestDist, bestCat, best = dist, cat, m
		}
	}
	return best
}

// pawnMoveCategory ranks a pawn move by spec §4.5's tie-break order: 0 = forward
// (strictly closer to the goal row), 1 = sideways toward the opponent's column,
// 2 = anything else.
func pawnMoveCategory(b *board.Board, me board.Player, m board.Move) int {
	from := b.Pawn(me)
	goalRow := me.GoalRow(b.N())

	if absInt(goalRow-m.To.Row) < absInt(goalRow-from.Row) {
		return 0
	}
	if m.To.Row == from.Row {
		opp := b.Pawn(me.Opponent())
		if opp.Col != from.Col && sign(m.To.Col-from.Col) == sign(opp.Col-from.Col) {
			return 1
		}
	}
	return 2
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// DefensivePolicy places a path-lengthening wall whenever the opponent is close
// enough to threaten the race (dist_opp <= dist_me + KDef), otherwise behaves as
// ShortestPath (spec §4.5).
type DefensivePolicy struct {
	KDef int // 0 means the spec default of 2
}

// DefaultDefensive returns the Defensive policy with spec §4.5's default k_def=2.
func DefaultDefensive() DefensivePolicy {
	return DefensivePolicy{KDef: 2}
}

func (d DefensivePolicy) Select(b *board.Board, rnd *rand.Rand) (board.Move, error) {
	me := b.Turn()
	opp := me.Opponent()
	distMe, _ := b.ShortestPath(me)
	distOpp, _ := b.ShortestPath(opp)

	walls := b.LegalWalls()
	if distOpp <= distMe+d.kDef() && b.WallsLeft(me) > 0 && len(walls) > 0 {
		return bestWallByDelta(b, me, opp, walls), nil
	}
	return ShortestPathPolicy{}.Select(b, rnd)
}

func (d DefensivePolicy) kDef() int {
	if d.KDef == 0 {
		return 2
	}
	return d.KDef
}

// bestWallByDelta returns the legal wall maximizing the swing in the race: the
// increase in the opponent's distance minus the increase in the mover's own
// distance (spec §4.5's "maximizes Δdist_opp - Δdist_me").
func bestWallByDelta(b *board.Board, me, opp board.Player, walls []board.Move) board.Move {
	baseMe, _ := b.ShortestPath(me)
	baseOpp, _ := b.ShortestPath(opp)

	best := walls[0]
	bestScore := MinScore
	for i, w := range walls {
		trial := b.Clone()
		trial.ApplyMove(w)
		dMe, okMe := trial.ShortestPath(me)
		dOpp, okOpp := trial.ShortestPath(opp)
		score := Score(clamp(dOpp, okOpp)-baseOpp) - Score(clamp(dMe, okMe)-baseMe)
		if i == 0 || score > bestScore {
			bestScore, best = score, w
		}
	}
	return best
}

// BalancedPolicy picks the legal move (pawn or wall) maximizing the Balanced
// heuristic score after applying it (spec §4.5).
type BalancedPolicy struct {
	Eval Balanced
}

// DefaultBalancedPolicy returns BalancedPolicy with spec §4.5's default weights.
func DefaultBalancedPolicy() BalancedPolicy {
	return BalancedPolicy{Eval: DefaultBalanced()}
}

func (p BalancedPolicy) Select(b *board.Board, rnd *rand.Rand) (board.Move, error) {
	moves := LegalMoves(b)
	if len(moves) == 0 {
		return board.Move{}, ErrNoLegalMoves
	}

	me := b.Turn()
	best := moves[0]
	bestScore := MinScore - 1
	for _, m := range moves {
		trial := b.Clone()
		trial.ApplyMove(m)
		if s := p.Eval.Evaluate(trial, me); s > bestScore {
			bestScore, best = s, m
		}
	}
	return best, nil
}

// AdaptivePolicy changes behavior by game phase (spec §4.5): pawn advance in the
// opening (ply < 6), Balanced play in the middlegame, and in the endgame (either
// pawn within 3 of its goal) a path-lengthening wall when behind, else pure
// ShortestPath.
type AdaptivePolicy struct{}

const (
	adaptiveOpeningPlies = 6
	adaptiveEndgameDist  = 3
)

func (AdaptivePolicy) Select(b *board.Board, rnd *rand.Rand) (board.Move, error) {
	me := b.Turn()
	opp := me.Opponent()
	distMe, _ := b.ShortestPath(me)
	distOpp, _ := b.ShortestPath(opp)

	switch {
	case b.Ply() < adaptiveOpeningPlies:
		return ShortestPathPolicy{}.Select(b, rnd)

	case distMe <= adaptiveEndgameDist || distOpp <= adaptiveEndgameDist:
		if distMe > distOpp {
			if walls := b.LegalWalls(); b.WallsLeft(me) > 0 && len(walls) > 0 {
				return bestWallByDelta(b, me, opp, walls), nil
			}
		}
		return ShortestPathPolicy{}.Select(b, rnd)

	default:
		return DefaultBalancedPolicy().Select(b, rnd)
	}
}

// MirrorPolicy replays the opponent's last move reflected through the board's
// center, falling back to ShortestPath when the reflection is illegal or there is
// no history yet (spec §4.5).
type MirrorPolicy struct{}

func (MirrorPolicy) Select(b *board.Board, rnd *rand.Rand) (board.Move, error) {
	hist := b.History()
	if len(hist) == 0 {
		return ShortestPathPolicy{}.Select(b, rnd)
	}

	candidate := reflectMove(b.N(), hist[len(hist)-1].Move)
	if isLegal(b, candidate) {
		return candidate, nil
	}
	return ShortestPathPolicy{}.Select(b, rnd)
}

// reflectMove maps m through the 180-degree rotation of an n x n board.
func reflectMove(n int, m board.Move) board.Move {
	if m.Kind == board.PawnMove {
		return board.NewPawnMove(board.Cell{Row: n - 1 - m.To.Row, Col: n - 1 - m.To.Col})
	}

	w := m.Wall
	var rw board.Wall
	if w.Orient == board.Horizontal {
		rw = board.Wall{Row: n - w.Row, Col: n - 2 - w.Col, Orient: board.Horizontal}
	} else {
		rw = board.Wall{Row: n - 2 - w.Row, Col: n - w.Col, Orient: board.Vertical}
	}
	return board.NewWallMove(rw)
}

func isLegal(b *board.Board, m board.Move) bool {
	pool := b.LegalPawnMoves()
	if m.Kind == board.WallMove {
		pool = b.LegalWalls()
	}
	for _, c := range pool {
		if c.Equals(m) {
			return true
		}
	}
	return false
}
