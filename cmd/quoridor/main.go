// quoridor is an interactive console driver for the Quoridor decision engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/logw"

	"github.com/arnegrim/quoridor/pkg/engine"
	"github.com/arnegrim/quoridor/pkg/engine/console"
)

var (
	size  = flag.Int("size", 9, "Board size N")
	walls = flag.Int("walls", 10, "Wall inventory per player")
	seed  = flag.Int64("seed", 0, "Random seed (zero derives one from wall-clock time)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: quoridor [options]

QUORIDOR is a console driver for the Quoridor decision engine: board rules,
legal-move generation and AI strategies (minimax, MCTS, simulated annealing,
and named heuristic policies).
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	e := engine.New(ctx, *size, *walls, s)

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	logw.Infof(ctx, "%v ready (N=%v, walls=%v, seed=%v)", engine.Name(), *size, *walls, s)
	<-driver.Closed()
}
