package openings

import "github.com/arnegrim/quoridor/pkg/board"

// Named opening identifiers, exactly as enumerated in spec §6.
const (
	NoOpening                      = "No Opening"
	SidewallOpening                = "Sidewall Opening"
	StandardOpening                = "Standard Opening"
	ShillerOpening                 = "Shiller Opening"
	Stonewall                      = "Stonewall"
	AlaOpening                     = "Ala Opening"
	StandardOpeningSymmetrical     = "Standard Opening (Symmetrical)"
	RushVariation                  = "Rush Variation"
	GapOpening                     = "Gap Opening"
	GapOpeningMainline             = "Gap Opening (Mainline)"
	AntiGap                        = "Anti-Gap"
	Sidewall                       = "Sidewall"
	SidewallProperCounter          = "Sidewall (Proper Counter)"
	QuickBoxVariation              = "Quick Box Variation"
	ShatranjOpening                = "Shatranj Opening"
	LeeInversion                   = "Lee Inversion"
)

func p1(move string) Step { return Step{Player: board.P1, Move: move} }
func p2(move string) Step { return Step{Player: board.P2, Move: move} }

// DefaultBook is the fixed table of named opening lines (spec §4.6.3, §9 "Opening
// scripts as data"). Every line is built for the canonical N=9, W=10 game; a line
// simply stops matching (and play falls through to the configured strategy) on any
// board of a different size, since Line.Next compares against the live board's own
// algebraic rendering.
func DefaultBook() *Book {
	return NewBook([]Line{
		{Name: NoOpening},

		{Name: StandardOpening, Steps: []Step{
			p1("e2"), p2("e8"), p1("e3"), p2("e7"),
		}},

		{Name: StandardOpeningSymmetrical, Steps: []Step{
			p1("e2"), p2("e8"), p1("e3"), p2("e7"), p1("e4"), p2("e6"),
		}},

		{Name: SidewallOpening, Steps: []Step{
			p1("e2"), p2("e8"), p1("c8h"), p2("e7"),
		}},

		{Name: Sidewall, Steps: []Step{
			p1("e2"), p2("e8"), p1("g8h"), p2("e7"), p1("e3"),
		}},

		{Name: SidewallProperCounter, Steps: []Step{
			p1("e2"), p2("e8"), p1("c8h"), p2("c7v"), p1("e3"),
		}},

		{Name: ShillerOpening, Steps: []Step{
			p1("e2"), p2("e8"), p1("e3"), p2("c2h"),
		}},

		{Name: Stonewall, Steps: []Step{
			p1("e3h"), p2("e8"), p1("e2"), p2("e6h"),
		}},

		{Name: AlaOpening, Steps: []Step{
			p1("d1"), p2("f9"), p1("d2"), p2("f8"),
		}},

		{Name: RushVariation, Steps: []Step{
			p1("e2"), p2("e8"), p1("e3"), p2("e7"), p1("e4"), p2("e6"), p1("e5"),
		}},

		{Name: GapOpening, Steps: []Step{
			p1("e2"), p2("e8"), p1("c2h"), p2("g2h"),
		}},

		{Name: GapOpeningMainline, Steps: []Step{
			p1("e2"), p2("e8"), p1("c2h"), p2("g2h"), p1("e3"), p2("e7"),
		}},

		{Name: AntiGap, Steps: []Step{
			p1("e2"), p2("e8"), p1("c2h"), p2("e3v"),
		}},

		{Name: QuickBoxVariation, Steps: []Step{
			p1("e2"), p2("e8"), p1("d8h"), p2("e7"), p1("f8v"),
		}},

		{Name: ShatranjOpening, Steps: []Step{
			p1("f1"), p2("d9"), p1("f2"), p2("d8"),
		}},

		{Name: LeeInversion, Steps: []Step{
			p1("e2"), p2("d9"), p1("d2"), p2("d8"),
		}},
	})
}
