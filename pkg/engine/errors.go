package engine

import (
	"fmt"

	"github.com/arnegrim/quoridor/pkg/board"
)

// Error kinds per spec §7. board.ParseError already covers malformed algebraic
// input (reused directly, not redefined here).

// IllegalMoveError reports a well-formed move that violates the rules.
type IllegalMoveError struct {
	Move string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %v", e.Move)
}

// NotActivePlayerError reports an operation attempted for the wrong player.
type NotActivePlayerError struct {
	Player board.Player
}

func (e *NotActivePlayerError) Error() string {
	return fmt.Sprintf("not the active player: %v", e.Player)
}

// TerminalError reports an attempt to mutate a decided game.
type TerminalError struct{}

func (e *TerminalError) Error() string {
	return "game is over"
}

// UnknownStrategyError reports an unrecognized strategy name.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy: %q", e.Name)
}

// UnknownOpeningError reports an unrecognized opening name.
type UnknownOpeningError struct {
	Name string
}

func (e *UnknownOpeningError) Error() string {
	return fmt.Sprintf("unknown opening: %q", e.Name)
}
