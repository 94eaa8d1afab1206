// Package console implements an interactive line-based driver for manual testing
// of pkg/engine, adapted from the teacher's pkg/engine/console/console.go, trimmed
// of UCI-pondering and chess-specific notions (FEN, castling, MVV-LVA) that have
// no Quoridor analogue.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/arnegrim/quoridor/pkg/board"
	"github.com/arnegrim/quoridor/pkg/engine"
)

// ProtocolName identifies this driver, for diagnostics.
const ProtocolName = "console"

// Driver is a line-based command loop over an *engine.Engine: reset, move, legal,
// ai, strategy, print, quit.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string
}

// NewDriver starts processing lines from in against e, emitting replies on the
// returned channel. Async, mirroring the teacher's NewDriver.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v", engine.Name())
	d.printBoard()

	for {
		line, ok := <-in
		if !ok {
			logw.Infof(ctx, "Input stream broken. Exiting")
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "reset", "r":
			d.e.Reset(ctx)
			d.printBoard()

		case "move", "m":
			if len(args) != 1 {
				d.out <- "usage: move <algebraic>"
				break
			}
			if !d.e.MakeMove(ctx, args[0]) {
				d.out <- fmt.Sprintf("illegal move: %v", args[0])
				break
			}
			d.printBoard()

		case "legal", "l":
			d.out <- fmt.Sprintf("pawn: %v", d.e.LegalPawnMoves())
			d.out <- fmt.Sprintf("wall: %v", d.e.LegalWalls())

		case "ai":
			mv, err := d.e.AIMove(ctx)
			if err != nil {
				d.out <- fmt.Sprintf("ai_move failed: %v", err)
				break
			}
			d.out <- mv

		case "strategy", "s":
			if len(args) < 3 {
				d.out <- "usage: strategy <1|2> <name> <opening...>"
				break
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || (n != 1 && n != 2) {
				d.out <- "player must be 1 or 2"
				break
			}
			player := board.P1
			if n == 2 {
				player = board.P2
			}
			opening := strings.Join(args[2:], " ")
			if !d.e.SetStrategy(ctx, player, args[1], opening) {
				d.out <- "unknown strategy or opening"
			}

		case "print", "p":
			d.printBoard()

		case "quit", "q":
			logw.Infof(ctx, "Quit requested")
			return

		default:
			d.out <- fmt.Sprintf("unknown command: %v", cmd)
		}
	}
}

func (d *Driver) printBoard() {
	gs := d.e.GameState()
	d.out <- fmt.Sprintf("P1=%v(%v walls) P2=%v(%v walls) active=P%v terminal=%v winner=P%v walls=%v",
		gs.Players[board.P1].Pawn, gs.Players[board.P1].WallsLeft,
		gs.Players[board.P2].Pawn, gs.Players[board.P2].WallsLeft,
		gs.ActivePlayer, gs.Terminal, gs.Winner, gs.Walls)
}
