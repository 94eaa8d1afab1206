// Package openings implements scripted opening books: ordered (player, move)
// sequences consulted at the top of every AI query (spec §4.6.3). Opening lines
// are stored as plain data, never as per-opening control flow (spec §9 "Opening
// scripts as data"), grounded on the teacher's pkg/engine/book.go Book/Line shape.
package openings

import "github.com/arnegrim/quoridor/pkg/board"

// Step is one scripted half-move: the player expected to make it, and the move in
// algebraic wire notation.
type Step struct {
	Player board.Player
	Move   string
}

// Line is one named scripted opening sequence.
type Line struct {
	Name  string
	Steps []Step
}

// Next reports the line's next scripted step given the game's history so far, iff
// history is an exact prefix of the line (spec §4.6.3). n is the board size, used
// to render each historical Ply back into algebraic notation for comparison.
func (l Line) Next(n int, history []board.Ply) (board.Player, string, bool) {
	if len(history) >= len(l.Steps) {
		return 0, "", false
	}
	for i, h := range history {
		step := l.Steps[i]
		if h.Player != step.Player || h.Move.String(n) != step.Move {
			return 0, "", false
		}
	}
	next := l.Steps[len(history)]
	return next.Player, next.Move, true
}

// Resolve returns the line's scripted move for b's active player right now, iff
// history matches the line's prefix, it is actually the scripted player's turn,
// and the scripted move is legal on b (spec §4.6.3: "If the history so far is a
// prefix of the opening and the next scripted move is legal for the active
// player, return it. Otherwise, fall through to the strategy.").
func (l Line) Resolve(b *board.Board) (board.Move, bool) {
	player, s, ok := l.Next(b.N(), b.History())
	if !ok || player != b.Turn() {
		return board.Move{}, false
	}

	mv, err := board.ParseMove(b.N(), s)
	if err != nil {
		return board.Move{}, false
	}

	pool := b.LegalPawnMoves()
	if mv.Kind == board.WallMove {
		pool = b.LegalWalls()
	}
	for _, c := range pool {
		if c.Equals(mv) {
			return mv, true
		}
	}
	return board.Move{}, false
}

// Book is a named collection of opening lines, keyed by name for O(1) lookup from
// set_strategy (spec §6).
type Book struct {
	lines map[string]Line
}

// NewBook builds a Book from a literal slice of lines.
func NewBook(lines []Line) *Book {
	bk := &Book{lines: make(map[string]Line, len(lines))}
	for _, l := range lines {
		bk.lines[l.Name] = l
	}
	return bk
}

// Find looks up an opening by its exact name (spec §6's opening-name table).
func (bk *Book) Find(name string) (Line, bool) {
	l, ok := bk.lines[name]
	return l, ok
}

// Default returns the book's "No Opening" line: zero scripted steps, so Resolve
// always falls through to the configured strategy immediately.
func (bk *Book) Default() Line {
	l, _ := bk.Find(NoOpening)
	return l
}
