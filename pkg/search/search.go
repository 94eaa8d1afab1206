// Package search implements the move-selection algorithms behind the AI
// strategies: alpha-beta minimax, UCT Monte Carlo tree search, and simulated
// annealing, all operating over pkg/board and pkg/eval.
package search

import (
	"context"
	"time"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/eval"
)

// PV ("principal variation") reports metadata about a completed search: the
// chosen move, its score, and node/time counters useful for tuning MCTS and
// annealing budgets, mirroring the teacher's pkg/search.PV.
type PV struct {
	Move    board.Move
	Score   eval.Score
	Nodes   int
	Elapsed time.Duration
}

// Search picks one move for the board's active player (spec §4.6). Every
// implementation in this package must never return a zero Move for a board with
// at least one legal move (spec §7's "empty ai_move is a bug").
type Search interface {
	Search(ctx context.Context, b *board.Board) (board.Move, PV)
}
