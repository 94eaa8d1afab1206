// Package engine implements the engine façade (spec §6): the single entry point
// hosts call into for every operation (new, reset, set_strategy, legal move
// queries, make_move, check_win, ai_move, game_state, active_player). Grounded on
// the teacher's pkg/engine/engine.go: a mutex-guarded struct over a board, logw
// logging on every mutating call, a build-reported version string.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/openings"
	"github.com/arnegrim/quoridor/pkg/strategy"
)

var version = build.NewVersion(0, 1, 0)

// Name returns the engine's reported name and version string.
func Name() string {
	return fmt.Sprintf("quoridor %v", version)
}

// PlayerState is one player's slice of a GameState snapshot.
type PlayerState struct {
	Pawn      string // algebraic cell
	WallsLeft int
}

// GameState is the structured snapshot returned by game_state() (spec §6).
type GameState struct {
	N            int
	Players      [board.NumPlayers]PlayerState
	Walls        []string // algebraic wall keys, placed so far
	ActivePlayer board.Player
	Terminal     bool
	Winner       board.Player // meaningful iff Terminal
}

// Engine is a single Quoridor game instance: board state plus each player's
// configured strategy and opening book. Not thread-safe across instances by
// design (spec §5); the mutex here only serializes concurrent calls on the *same*
// instance, which the spec explicitly says is undefined behavior to rely on, not
// a supported concurrency model.
type Engine struct {
	mu sync.Mutex

	n, w int
	seed int64
	rnd  *rand.Rand

	registry   map[string]strategy.Strategy
	book       *openings.Book
	strategies map[board.Player]strategy.Strategy
	lines      map[board.Player]openings.Line

	b *board.Board
}

// New creates a fresh engine for a board of size n with w walls per player (spec
// §6 "new(N, W)"). Both players default to the Human strategy and "No Opening"
// until set_strategy configures them.
func New(ctx context.Context, n, w int, seed int64) *Engine {
	e := &Engine{
		n:        n,
		w:        w,
		seed:     seed,
		rnd:      rand.New(rand.NewSource(seed)),
		registry: strategy.Registry(seed),
		book:     openings.DefaultBook(),
	}
	e.reset(ctx)

	logw.Infof(ctx, "Initialized %v: N=%v W=%v seed=%v", Name(), n, w, seed)
	return e
}

// Reset returns the engine to its initial state; history is cleared (spec §6).
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset(ctx)
}

func (e *Engine) reset(ctx context.Context) {
	e.b = board.NewBoard(e.n, e.w)
	if e.strategies == nil {
		human := e.registry["Human"]
		e.strategies = map[board.Player]strategy.Strategy{board.P1: human, board.P2: human}
	}
	if e.lines == nil {
		e.lines = map[board.Player]openings.Line{
			board.P1: e.book.Default(),
			board.P2: e.book.Default(),
		}
	}
	logw.Infof(ctx, "Reset: %v", e.b)
}

// SetStrategy configures player's strategy and opening book (spec §6). Returns
// false, without mutating anything, for an unrecognized strategy or opening name.
func (e *Engine) SetStrategy(ctx context.Context, player board.Player, strategyName, openingName string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.registry[strategyName]
	if !ok {
		logw.Errorf(ctx, "SetStrategy P%v: %v", player, (&UnknownStrategyError{Name: strategyName}).Error())
		return false
	}
	line, ok := e.book.Find(openingName)
	if !ok {
		logw.Errorf(ctx, "SetStrategy P%v: %v", player, (&UnknownOpeningError{Name: openingName}).Error())
		return false
	}

	e.strategies[player] = st
	e.lines[player] = line
	logw.Infof(ctx, "SetStrategy P%v: strategy=%v opening=%v", player, strategyName, openingName)
	return true
}

// LegalPawnMoves returns the active player's legal pawn-move destinations in
// algebraic notation (spec §6).
func (e *Engine) LegalPawnMoves() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return formatMoves(e.b, e.b.LegalPawnMoves())
}

// LegalWalls returns the active player's legal wall placements in algebraic
// notation (spec §6).
func (e *Engine) LegalWalls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return formatMoves(e.b, e.b.LegalWalls())
}

func formatMoves(b *board.Board, moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String(b.N())
	}
	return out
}

// MakeMove parses and applies s for the active player, returning true iff it was
// legal and applied (spec §6). A malformed or illegal move leaves state unchanged.
func (e *Engine) MakeMove(ctx context.Context, s string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.b.Result().Terminal {
		logw.Errorf(ctx, "MakeMove %v: %v", s, (&TerminalError{}).Error())
		return false
	}

	mv, err := board.ParseMove(e.b.N(), s)
	if err != nil {
		logw.Errorf(ctx, "MakeMove %v: %v", s, err)
		return false
	}
	if !e.b.ApplyMove(mv) {
		logw.Errorf(ctx, "MakeMove %v: %v", s, (&IllegalMoveError{Move: s}).Error())
		return false
	}

	logw.Infof(ctx, "MakeMove %v: %v", s, e.b)
	return true
}

// CheckWin reports whether s is legal for the active player AND reaches their
// goal row; never mutates (spec §6).
func (e *Engine) CheckWin(s string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	mv, err := board.ParseMove(e.b.N(), s)
	if err != nil {
		return false
	}
	return e.b.CheckWin(mv)
}

// AIMove returns the algebraic move chosen by the active player's configured
// strategy; it does not apply the move (spec §6: "mutation is the caller's
// responsibility"). The active player's opening line is consulted first (spec
// §4.6.3) and takes priority over the configured strategy while it still matches.
func (e *Engine) AIMove(ctx context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.b.Result().Terminal {
		return "", &TerminalError{}
	}

	active := e.b.Turn()
	st := e.strategies[active]
	if st.IsHuman() {
		return "", fmt.Errorf("engine: ai_move called for Human player P%v", active)
	}

	if mv, ok := e.lines[active].Resolve(e.b); ok {
		s := mv.String(e.b.N())
		logw.Infof(ctx, "AIMove P%v: %v (opening)", active, s)
		return s, nil
	}

	mv, pv, err := st.Select(ctx, e.b, e.rnd)
	if err != nil {
		logw.Errorf(ctx, "AIMove P%v: %v", active, err)
		return "", err
	}

	s := mv.String(e.b.N())
	logw.Infof(ctx, "AIMove P%v: %v (%v, nodes=%v, %v)", active, s, st.Name, pv.Nodes, pv.Elapsed)
	return s, nil
}

// GameState returns a structured snapshot of the current position (spec §6).
func (e *Engine) GameState() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.b.N()
	var players [board.NumPlayers]PlayerState
	for _, p := range [board.NumPlayers]board.Player{board.P1, board.P2} {
		players[p] = PlayerState{
			Pawn:      board.ToAlgebraic(n, e.b.Pawn(p)),
			WallsLeft: e.b.WallsLeft(p),
		}
	}

	walls := e.b.Walls()
	out := make([]string, len(walls))
	for i, w := range walls {
		out[i] = board.ToAlgebraicWall(n, w)
	}

	r := e.b.Result()
	return GameState{
		N:            n,
		Players:      players,
		Walls:        out,
		ActivePlayer: e.b.Turn(),
		Terminal:     r.Terminal,
		Winner:       r.Winner,
	}
}

// ActivePlayer returns the active player, board.P1 or board.P2, which print as
// "1" and "2".
func (e *Engine) ActivePlayer() board.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b.Turn()
}
