package search

import (
	"container/heap"

	"github.com/arnegrim/quoridor/pkg/board"
)

// orderedMove pairs a candidate wall move with its ordering key; lower sorts
// first, i.e. more favorable wall moves are popped earlier.
type orderedMove struct {
	move board.Move
	key  int
}

// moveHeap orders candidate wall moves by descending favorability to the mover,
// adapted from the teacher's pkg/search/movelist.go moveHeap (container/heap over
// a priority key rather than a plain sort, so the caller can pop incrementally).
type moveHeap []orderedMove

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(orderedMove)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// OrderMoves returns the active player's legal moves ordered for search: pawn
// moves first (spec §4.6.1 "enumerate legal moves in the order above"), then wall
// moves ranked by how much each immediately swings the distance race in the
// mover's favor.
func OrderMoves(b *board.Board) []board.Move {
	pawns := b.LegalPawnMoves()
	walls := b.LegalWalls()

	h := &moveHeap{}
	heap.Init(h)
	for _, w := range walls {
		heap.Push(h, orderedMove{move: w, key: wallOrderKey(b, w)})
	}

	ordered := make([]board.Move, 0, len(pawns)+len(walls))
	ordered = append(ordered, pawns...)
	for h.Len() > 0 {
		ordered = append(ordered, heap.Pop(h).(orderedMove).move)
	}
	return ordered
}

// wallOrderKey scores a wall move by -(Δdist_opp - Δdist_me), so the heap (a
// min-heap) pops the wall that most favors the mover first.
func wallOrderKey(b *board.Board, w board.Move) int {
	me := b.Turn()
	opp := me.Opponent()
	baseMe, _ := b.ShortestPath(me)
	baseOpp, _ := b.ShortestPath(opp)

	trial := b.Clone()
	trial.ApplyMove(w)
	dMe, okMe := trial.ShortestPath(me)
	dOpp, okOpp := trial.ShortestPath(opp)

	delta := (clampDist(dOpp, okOpp) - baseOpp) - (clampDist(dMe, okMe) - baseMe)
	return -delta
}

func clampDist(d int, ok bool) int {
	if !ok {
		return 1000
	}
	return d
}
