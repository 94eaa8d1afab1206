package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/engine"
)

func TestNewDefaultsToHumanAndNoOpening(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)

	gs := e.GameState()
	assert.Equal(t, 9, gs.N)
	assert.Equal(t, "e1", gs.Players[board.P1].Pawn)
	assert.Equal(t, "e9", gs.Players[board.P2].Pawn)
	assert.Equal(t, 10, gs.Players[board.P1].WallsLeft)
	assert.Equal(t, board.P1, gs.ActivePlayer)
	assert.False(t, gs.Terminal)
	assert.Empty(t, gs.Walls)
}

func TestSetStrategyRejectsUnknownNames(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)

	assert.False(t, e.SetStrategy(ctx, board.P1, "NotAStrategy", "No Opening"))
	assert.False(t, e.SetStrategy(ctx, board.P1, "Random", "Not An Opening"))
	assert.True(t, e.SetStrategy(ctx, board.P1, "Random", "No Opening"))
}

func TestMakeMoveAppliesLegalAndRejectsIllegal(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)

	assert.False(t, e.MakeMove(ctx, "e5"), "not adjacent to e1 on the opening position")
	assert.True(t, e.MakeMove(ctx, "e2"))
	assert.Equal(t, board.P2, e.ActivePlayer())

	assert.False(t, e.MakeMove(ctx, "not-a-move"))
}

func TestMakeMoveConsistentWithLegalMoveQueries(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)

	legal := e.LegalPawnMoves()
	require.NotEmpty(t, legal)
	for _, s := range legal {
		assert.False(t, e.CheckWin(s), "no opening pawn move reaches the goal row")
	}
	assert.True(t, e.MakeMove(ctx, legal[0]))
}

func TestCheckWinDetectsGoalRowWithoutMutating(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)
	// Walk P1 up column e to row 1, one step from its goal row 0, while P2
	// shuffles sideways in row 0 to stay clear of column e.
	for _, s := range []string{
		"e2", "d9",
		"e3", "c9",
		"e4", "d9",
		"e5", "c9",
		"e6", "d9",
		"e7", "c9",
		"e8", "d9",
	} {
		require.True(t, e.MakeMove(ctx, s))
	}
	require.Equal(t, board.P1, e.ActivePlayer())

	assert.True(t, e.CheckWin("e9"))
	assert.Equal(t, board.P1, e.ActivePlayer(), "CheckWin must not mutate state")

	require.True(t, e.MakeMove(ctx, "e9"))
	gs := e.GameState()
	assert.True(t, gs.Terminal)
	assert.Equal(t, board.P1, gs.Winner)

	assert.False(t, e.MakeMove(ctx, "e9"), "game is over")
}

func TestAIMoveErrorsForHumanActivePlayer(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)

	_, err := e.AIMove(ctx)
	assert.Error(t, err)
}

func TestAIMovePrefersOpeningLineWhileItMatches(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)
	require.True(t, e.SetStrategy(ctx, board.P1, "Random", "Standard Opening"))

	mv, err := e.AIMove(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2", mv, "Standard Opening's first scripted move for P1")
}

func TestAIMoveFallsThroughToStrategyOnceOpeningDiverges(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)
	require.True(t, e.SetStrategy(ctx, board.P1, "ShortestPath", "Standard Opening"))
	require.True(t, e.MakeMove(ctx, "d1")) // diverges from the Standard Opening's scripted e2

	require.True(t, e.SetStrategy(ctx, board.P2, "ShortestPath", "Standard Opening"))
	mv, err := e.AIMove(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, mv)
}

func TestResetClearsHistoryAndBoard(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)
	require.True(t, e.MakeMove(ctx, "e2"))

	e.Reset(ctx)
	gs := e.GameState()
	assert.Equal(t, "e1", gs.Players[board.P1].Pawn)
	assert.Equal(t, board.P1, gs.ActivePlayer)
}

func TestGameStateReflectsPlacedWalls(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, 9, 10, 1)
	require.True(t, e.MakeMove(ctx, "e2h"))

	gs := e.GameState()
	require.Len(t, gs.Walls, 1)
	assert.Equal(t, "e2h", gs.Walls[0])
	assert.Equal(t, 9, gs.Players[board.P1].WallsLeft)
}
