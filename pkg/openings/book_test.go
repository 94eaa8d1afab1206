package openings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/openings"
)

func TestDefaultBookHasEveryNamedOpening(t *testing.T) {
	bk := openings.DefaultBook()
	names := []string{
		openings.NoOpening,
		openings.SidewallOpening,
		openings.StandardOpening,
		openings.ShillerOpening,
		openings.Stonewall,
		openings.AlaOpening,
		openings.StandardOpeningSymmetrical,
		openings.RushVariation,
		openings.GapOpening,
		openings.GapOpeningMainline,
		openings.AntiGap,
		openings.Sidewall,
		openings.SidewallProperCounter,
		openings.QuickBoxVariation,
		openings.ShatranjOpening,
		openings.LeeInversion,
	}
	for _, n := range names {
		l, ok := bk.Find(n)
		assert.True(t, ok, "missing opening %q", n)
		assert.Equal(t, n, l.Name)
	}
}

func TestDefaultLineNeverMatches(t *testing.T) {
	bk := openings.DefaultBook()
	l := bk.Default()
	assert.Equal(t, openings.NoOpening, l.Name)

	_, _, ok := l.Next(9, nil)
	assert.False(t, ok)
}

func TestLineNextFollowsExactPrefix(t *testing.T) {
	l := openings.Line{Name: "test", Steps: []openings.Step{
		{Player: board.P1, Move: "e2"},
		{Player: board.P2, Move: "e8"},
	}}

	player, move, ok := l.Next(9, nil)
	require.True(t, ok)
	assert.Equal(t, board.P1, player)
	assert.Equal(t, "e2", move)

	mv, err := board.ParseMove(9, "e2")
	require.NoError(t, err)
	history := []board.Ply{{Player: board.P1, Move: mv}}

	player, move, ok = l.Next(9, history)
	require.True(t, ok)
	assert.Equal(t, board.P2, player)
	assert.Equal(t, "e8", move)
}

func TestLineNextStopsOnDivergence(t *testing.T) {
	l := openings.Line{Name: "test", Steps: []openings.Step{
		{Player: board.P1, Move: "e2"},
		{Player: board.P2, Move: "e8"},
	}}

	mv, err := board.ParseMove(9, "d2")
	require.NoError(t, err)
	history := []board.Ply{{Player: board.P1, Move: mv}}

	_, _, ok := l.Next(9, history)
	assert.False(t, ok)
}

func TestLineNextExhaustedReturnsFalse(t *testing.T) {
	l := openings.Line{Name: "test", Steps: []openings.Step{
		{Player: board.P1, Move: "e2"},
	}}

	mv, err := board.ParseMove(9, "e2")
	require.NoError(t, err)
	history := []board.Ply{{Player: board.P1, Move: mv}}

	_, _, ok := l.Next(9, history)
	assert.False(t, ok)
}

func TestLineResolveReturnsScriptedLegalMove(t *testing.T) {
	b := board.NewBoard(9, 10)
	l := openings.Line{Name: "test", Steps: []openings.Step{
		{Player: board.P1, Move: "e2"},
	}}

	mv, ok := l.Resolve(b)
	require.True(t, ok)
	assert.Equal(t, "e2", mv.String(9))
}

func TestLineResolveFallsThroughWhenMoveIllegal(t *testing.T) {
	b := board.NewBoard(9, 10)
	l := openings.Line{Name: "test", Steps: []openings.Step{
		{Player: board.P1, Move: "e5"}, // not reachable in one ply from the opening position
	}}

	_, ok := l.Resolve(b)
	assert.False(t, ok)
}

func TestLineResolveFallsThroughWhenWrongPlayerScripted(t *testing.T) {
	b := board.NewBoard(9, 10)
	l := openings.Line{Name: "test", Steps: []openings.Step{
		{Player: board.P2, Move: "e8"},
	}}

	_, ok := l.Resolve(b)
	assert.False(t, ok)
}
