// Package eval contains position evaluators and standalone move-selection policies
// used both by search (as leaf evaluation) and directly as AI strategies (spec §4.5).
package eval

import "fmt"

// Score is a signed position score from the perspective of the player to move;
// higher is better for that player. Mirrors the teacher's pkg/eval/score.go Score
// type (signed, croppable, with Max/Min helpers).
type Score int32

const (
	MinScore Score = -1000000
	MaxScore Score = 1000000
)

func (s Score) String() string {
	return fmt.Sprintf("%v", int32(s))
}

// Negate flips the score to the opponent's perspective, the negamax convention used
// throughout pkg/search.
func (s Score) Negate() Score {
	return -s
}

// Crop crops a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// IncrementMateDistance nudges a terminal (near max-magnitude) score one ply further
// from the root as it unwinds through the search tree, so search prefers faster wins
// and slower losses (spec §4.6.1), mirroring the teacher's
// pkg/search/alphabeta.go IncrementMateDistance/Negate usage.
func IncrementMateDistance(s Score) Score {
	const threshold = MaxScore - 10000
	switch {
	case s > threshold:
		return s - 1
	case s < -threshold:
		return s + 1
	default:
		return s
	}
}
