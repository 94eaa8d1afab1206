package strategy_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/strategy"
)

func TestRegistryContainsEveryNamedStrategy(t *testing.T) {
	reg := strategy.Registry(1)
	names := []string{
		"Human", "Random", "ShortestPath", "Defensive", "Balanced", "Adaptive", "Mirror",
		"Minimax1", "Minimax2",
		"MCTS5k", "MCTS10k", "MCTS1sec", "MCTS3sec",
		"SimulatedAnnealing0.5", "SimulatedAnnealing1.0", "SimulatedAnnealing1.5", "SimulatedAnnealing2.0",
	}
	for _, n := range names {
		s, ok := reg[n]
		require.True(t, ok, "missing strategy %q", n)
		assert.Equal(t, n, s.Name)
	}
	assert.Len(t, reg, len(names))
}

func TestHumanStrategyIsHuman(t *testing.T) {
	reg := strategy.Registry(1)
	assert.True(t, reg["Human"].IsHuman())
	assert.False(t, reg["Random"].IsHuman())
	assert.False(t, reg["Minimax1"].IsHuman())
}

func TestEveryNonHumanStrategySelectsALegalMove(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping time-budgeted searches in -short mode")
	}

	reg := strategy.Registry(2)
	b := board.NewBoard(9, 10)
	rnd := rand.New(rand.NewSource(9))

	for name, s := range reg {
		if s.IsHuman() {
			continue
		}

		mv, _, err := s.Select(context.Background(), b, rnd)
		require.NoError(t, err, "strategy %v", name)

		legal := false
		for _, c := range b.LegalPawnMoves() {
			if c.Equals(mv) {
				legal = true
			}
		}
		for _, c := range b.LegalWalls() {
			if c.Equals(mv) {
				legal = true
			}
		}
		assert.True(t, legal, "strategy %v picked illegal move %v", name, mv)
	}
}

func TestSameSeedProducesSameRegistryChoices(t *testing.T) {
	b := board.NewBoard(9, 10)
	rnd := rand.New(rand.NewSource(1))

	reg1 := strategy.Registry(7)
	mv1, _, err := reg1["MCTS5k"].Select(context.Background(), b, rnd)
	require.NoError(t, err)

	reg2 := strategy.Registry(7)
	mv2, _, err := reg2["MCTS5k"].Select(context.Background(), b, rnd)
	require.NoError(t, err)

	assert.True(t, mv1.Equals(mv2))
}
