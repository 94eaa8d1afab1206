package eval_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/eval"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestShortestPathPolicyAdvancesTowardGoal(t *testing.T) {
	b := board.NewBoard(9, 10)
	rnd := newRand()

	mv, err := eval.ShortestPathPolicy{}.Select(b, rnd)
	require.NoError(t, err)
	require.Equal(t, board.PawnMove, mv.Kind)

	before, _ := b.ShortestPath(board.P1)
	trial := b.Clone()
	trial.ApplyMove(mv)
	after, _ := trial.ShortestPath(board.P1)
	assert.Less(t, after, before)
}

func TestDefensivePolicyPlacesWallWhenOpponentWithinKDef(t *testing.T) {
	b := board.NewBoard(9, 10)
	// Advance both pawns to an even race (5 steps each from goal), so
	// dist_opp <= dist_me + k_def and Defensive's trigger fires for P1.
	for _, s := range []string{"e2", "e8", "e3", "e7", "e4", "e6"} {
		mv, err := board.ParseMove(b.N(), s)
		require.NoError(t, err)
		require.True(t, b.ApplyMove(mv))
	}
	require.Equal(t, board.P1, b.Turn())

	mv, err := eval.DefaultDefensive().Select(b, newRand())
	require.NoError(t, err)
	assert.Equal(t, board.WallMove, mv.Kind)
}

func TestBalancedPolicyNeverEmpty(t *testing.T) {
	b := board.NewBoard(9, 10)
	mv, err := eval.DefaultBalancedPolicy().Select(b, newRand())
	require.NoError(t, err)
	assert.NotEqual(t, board.Move{}, mv)
}

func TestMirrorPolicyFallsBackWithNoHistory(t *testing.T) {
	b := board.NewBoard(9, 10)
	mv, err := eval.MirrorPolicy{}.Select(b, newRand())
	require.NoError(t, err)
	assert.Equal(t, board.PawnMove, mv.Kind)
}

func TestMirrorPolicyReflectsThroughCenter(t *testing.T) {
	b := board.NewBoard(9, 10)
	mv, err := board.ParseMove(b.N(), "e2")
	require.NoError(t, err)
	require.True(t, b.ApplyMove(mv)) // P1 plays e2; P2 to move

	reflected, err := eval.MirrorPolicy{}.Select(b, newRand())
	require.NoError(t, err)
	// e2 reflected through the center of a 9x9 board is e8, matching P2's mirror move.
	assert.Equal(t, "e8", reflected.String(b.N()))
}

func TestRandomPolicyStaysWithinLegalMoves(t *testing.T) {
	b := board.NewBoard(9, 10)
	legal := eval.LegalMoves(b)

	mv, err := eval.RandomPolicy{}.Select(b, newRand())
	require.NoError(t, err)

	found := false
	for _, c := range legal {
		if c.Equals(mv) {
			found = true
			break
		}
	}
	assert.True(t, found)
}
