package board

// LegalPawnMoves returns the active player's legal pawn-move destinations,
// including jumps (spec §4.4.1). A decided game has none.
func (b *Board) LegalPawnMoves() []Move {
	if b.result.Terminal {
		return nil
	}
	return b.legalPawnMoves(b.turn)
}

// legalPawnMoves computes legal pawn destinations for the given player, regardless
// of whose turn it actually is. LegalPawnMoves, CheckWin and ApplyMove call it for
// the active player; it ignores the terminal flag, which LegalPawnMoves checks.
func (b *Board) legalPawnMoves(me Player) []Move {
	p := b.pawn[me]
	q := b.pawn[me.Opponent()]

	var dests []Cell
	for _, c := range neighbors(p) {
		if !b.Adjacent(p, c) {
			continue
		}

		if c != q {
			dests = append(dests, c)
			continue
		}

		// Opponent directly in front: jump over, straight if possible, else lateral.
		dr, dc := c.Row-p.Row, c.Col-p.Col
		behind := Cell{Row: c.Row + dr, Col: c.Col + dc}
		if b.InBounds(behind) && b.Adjacent(c, behind) {
			dests = append(dests, behind)
			continue
		}
		for _, lat := range lateralCells(dr, dc, q) {
			if b.Adjacent(q, lat) {
				dests = append(dests, lat)
			}
		}
	}

	moves := make([]Move, 0, len(dests))
	for _, d := range dests {
		moves = append(moves, NewPawnMove(d))
	}
	return moves
}

// lateralCells returns the (up to two) cells adjacent to q perpendicular to the jump
// direction (dr, dc) -- the candidate diagonal-jump destinations.
func lateralCells(dr, dc int, q Cell) [2]Cell {
	if dr != 0 {
		return [2]Cell{{Row: q.Row, Col: q.Col - 1}, {Row: q.Row, Col: q.Col + 1}}
	}
	return [2]Cell{{Row: q.Row - 1, Col: q.Col}, {Row: q.Row + 1, Col: q.Col}}
}

// LegalWalls returns the active player's legal wall placements (spec §4.4.2). This
// is typically the dominant cost of legal-move generation, since each candidate
// requires up to two BFS calls to confirm path preservation.
func (b *Board) LegalWalls() []Move {
	if b.result.Terminal || b.wallsLeft[b.turn] <= 0 {
		return nil
	}

	var moves []Move
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			for _, o := range [2]Orientation{Horizontal, Vertical} {
				w := Wall{Row: r, Col: c, Orient: o}
				if w.InRange(b.n) && b.isLegalWallNoInventory(w) {
					moves = append(moves, NewWallMove(w))
				}
			}
		}
	}
	return moves
}

// IsLegalWall reports whether placing w right now, for the active player, is legal:
// in range, no overlap, no parallel overlap, no cross, path preservation for both
// pawns, and the active player has walls remaining (spec §4.4.2, points 1-5).
func (b *Board) IsLegalWall(w Wall) bool {
	return !b.result.Terminal && b.wallsLeft[b.turn] > 0 && w.InRange(b.n) && b.isLegalWallNoInventory(w)
}

func (b *Board) isLegalWallNoInventory(w Wall) bool {
	if b.overlapsOrCrosses(w) {
		return false
	}

	b.setWall(w, true)
	b.invalidateDist()
	ok := b.AnyPathExists(P1) && b.AnyPathExists(P2)
	b.setWall(w, false)
	b.invalidateDist()
	return ok
}

// overlapsOrCrosses implements spec §4.4.2 points 1-3: no overlap, no parallel
// overlap (walls are two cells wide and must not share an edge-cell), no cross.
func (b *Board) overlapsOrCrosses(w Wall) bool {
	switch w.Orient {
	case Horizontal:
		if b.hWalls.IsSet(w.Row, w.Col) {
			return true
		}
		if w.Col > 0 && b.hWalls.IsSet(w.Row, w.Col-1) {
			return true
		}
		if w.Col < b.n-2 && b.hWalls.IsSet(w.Row, w.Col+1) {
			return true
		}
		return b.vWalls.IsSet(w.Row, w.Col+1) // I4: h(r,c) crosses v(r,c+1)

	default: // Vertical
		if b.vWalls.IsSet(w.Row, w.Col) {
			return true
		}
		if w.Row > 0 && b.vWalls.IsSet(w.Row-1, w.Col) {
			return true
		}
		if w.Row < b.n-2 && b.vWalls.IsSet(w.Row+1, w.Col) {
			return true
		}
		return b.hWalls.IsSet(w.Row, w.Col-1) // symmetric: v(r,c) crosses h(r,c-1)
	}
}

func (b *Board) setWall(w Wall, present bool) {
	ws := b.hWalls
	if w.Orient == Vertical {
		ws = b.vWalls
	}
	if present {
		ws.Set(w.Row, w.Col)
	} else {
		ws.Clear(w.Row, w.Col)
	}
}

// CheckWin reports whether m is legal for the active player right now AND its
// destination reaches the active player's goal row. Does not mutate (spec §4.4.3).
func (b *Board) CheckWin(m Move) bool {
	if b.result.Terminal || m.Kind != PawnMove {
		return false
	}
	if !containsMove(b.legalPawnMoves(b.turn), m) {
		return false
	}
	return m.To.Row == b.turn.GoalRow(b.n)
}

// ApplyMove validates and applies m for the active player. A rejected move leaves
// state unchanged and returns false; a legal move mutates, appends to history,
// detects a win, and flips the active player (spec §4.4.3).
func (b *Board) ApplyMove(m Move) bool {
	if b.result.Terminal {
		return false
	}

	switch m.Kind {
	case PawnMove:
		if !containsMove(b.legalPawnMoves(b.turn), m) {
			return false
		}
		b.pawn[b.turn] = m.To

	case WallMove:
		if !b.IsLegalWall(m.Wall) {
			return false
		}
		b.setWall(m.Wall, true)
		b.wallsLeft[b.turn]--

	default:
		return false
	}

	b.invalidateDist()
	mover := b.turn
	b.history = append(b.history, Ply{Player: mover, Move: m})

	if m.Kind == PawnMove && m.To.Row == mover.GoalRow(b.n) {
		b.result = Result{Terminal: true, Winner: mover}
	}

	b.turn = b.turn.Opponent()
	return true
}

func containsMove(moves []Move, m Move) bool {
	for _, c := range moves {
		if c.Equals(m) {
			return true
		}
	}
	return false
}
