// Package strategy dispatches the named AI strategies (spec §6's strategy-name
// table) onto pkg/eval policies and pkg/search algorithms, represented as a tagged
// variant rather than a class hierarchy (spec §9 "Polymorphism over strategies").
package strategy

import (
	"context"
	"math/rand"
	"time"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/eval"
	"github.com/arnegrim/quoridor/pkg/search"
)

// Kind tags which family of move-selector a Strategy wraps.
type Kind uint8

const (
	Human Kind = iota
	KindPolicy
	KindSearch
)

// Strategy is one named, fully-parameterized move selector: either a direct
// eval.Policy (Random/ShortestPath/Defensive/Balanced/Adaptive/Mirror) or a
// search.Search algorithm (Minimax-d/MCTS-k/MCTS-t/SimAnnealing-T0), each variant
// carrying its own parameters (spec §9: "depth, iteration budget, temperature").
type Strategy struct {
	Name   string
	Kind   Kind
	Policy eval.Policy
	Search search.Search
}

// Human never produces an AI move; invoking Select for it is a caller error (spec
// §6: "invoking ai_move when the active player is Human is a caller error").
func (s Strategy) IsHuman() bool {
	return s.Kind == Human
}

// Select returns the strategy's chosen move for b's active player. Regardless of
// which family of algorithm is wrapped, if the underlying selector comes back
// empty this falls back to any legal move, so ai_move can never return an empty
// string (spec §7).
func (s Strategy) Select(ctx context.Context, b *board.Board, rnd *rand.Rand) (board.Move, search.PV, error) {
	switch s.Kind {
	case KindPolicy:
		mv, err := s.Policy.Select(b, rnd)
		if err != nil {
			return fallback(b, rnd)
		}
		return mv, search.PV{Move: mv}, nil

	case KindSearch:
		mv, pv := s.Search.Search(ctx, b)
		if mv == (board.Move{}) && len(eval.LegalMoves(b)) > 0 {
			return fallback(b, rnd)
		}
		return mv, pv, nil

	default:
		return fallback(b, rnd)
	}
}

func fallback(b *board.Board, rnd *rand.Rand) (board.Move, search.PV, error) {
	mv, err := eval.RandomPolicy{}.Select(b, rnd)
	if err != nil {
		return board.Move{}, search.PV{}, err
	}
	return mv, search.PV{Move: mv}, nil
}

// Registry is the table of every named strategy (spec §6's exact strings), built
// fresh per engine so Search-backed entries get their own deterministic *rand.Rand
// rather than sharing one across strategies.
func Registry(seed int64) map[string]Strategy {
	rnd := rand.New(rand.NewSource(seed))

	return map[string]Strategy{
		"Human": {Name: "Human", Kind: Human},

		"Random":       {Name: "Random", Kind: KindPolicy, Policy: eval.RandomPolicy{}},
		"ShortestPath": {Name: "ShortestPath", Kind: KindPolicy, Policy: eval.ShortestPathPolicy{}},
		"Defensive":    {Name: "Defensive", Kind: KindPolicy, Policy: eval.DefaultDefensive()},
		"Balanced":     {Name: "Balanced", Kind: KindPolicy, Policy: eval.DefaultBalancedPolicy()},
		"Adaptive":     {Name: "Adaptive", Kind: KindPolicy, Policy: eval.AdaptivePolicy{}},
		"Mirror":       {Name: "Mirror", Kind: KindPolicy, Policy: eval.MirrorPolicy{}},

		"Minimax1": {Name: "Minimax1", Kind: KindSearch, Search: search.Minimax{Depth: 1}},
		"Minimax2": {Name: "Minimax2", Kind: KindSearch, Search: search.Minimax{Depth: 2}},

		"MCTS5k":  {Name: "MCTS5k", Kind: KindSearch, Search: search.MCTS{Iterations: lang.Some(5000), Rand: childRand(rnd)}},
		"MCTS10k": {Name: "MCTS10k", Kind: KindSearch, Search: search.MCTS{Iterations: lang.Some(10000), Rand: childRand(rnd)}},
		"MCTS1sec": {Name: "MCTS1sec", Kind: KindSearch, Search: search.MCTS{Budget: lang.Some(1 * time.Second), Rand: childRand(rnd)}},
		"MCTS3sec": {Name: "MCTS3sec", Kind: KindSearch, Search: search.MCTS{Budget: lang.Some(3 * time.Second), Rand: childRand(rnd)}},

		"SimulatedAnnealing0.5": {Name: "SimulatedAnnealing0.5", Kind: KindSearch, Search: search.SimulatedAnnealing{Temperature: 0.5, Rand: childRand(rnd)}},
		"SimulatedAnnealing1.0": {Name: "SimulatedAnnealing1.0", Kind: KindSearch, Search: search.SimulatedAnnealing{Temperature: 1.0, Rand: childRand(rnd)}},
		"SimulatedAnnealing1.5": {Name: "SimulatedAnnealing1.5", Kind: KindSearch, Search: search.SimulatedAnnealing{Temperature: 1.5, Rand: childRand(rnd)}},
		"SimulatedAnnealing2.0": {Name: "SimulatedAnnealing2.0", Kind: KindSearch, Search: search.SimulatedAnnealing{Temperature: 2.0, Rand: childRand(rnd)}},
	}
}

// childRand derives an independent, still-deterministic generator from the
// registry's seed stream, so every stochastic strategy is reproducible under a
// fixed engine seed (spec §8 "search determinism") without sharing mutable state.
func childRand(rnd *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(rnd.Int63()))
}
