package board

// ShortestPath returns the BFS distance, in pawn moves, from the player's current
// cell to the nearest cell in its goal row. The search ignores the opponent pawn
// entirely (spec §4.3, §9 open question): Adjacent depends only on walls, never on
// pawn occupancy, so the opponent's square is never treated as an obstacle. Results
// are cached on the board and invalidated on every mutation (spec §9 "Path oracle
// reuse").
func (b *Board) ShortestPath(p Player) (int, bool) {
	if c := b.dist[p]; c.valid {
		return c.dist, c.ok
	}

	dist, ok := bfsDistance(b, b.pawn[p], p.GoalRow(b.n))
	b.dist[p] = distCache{valid: true, dist: dist, ok: ok}
	return dist, ok
}

// AnyPathExists reports whether the player has any path to its goal row. Required
// by wall-placement validation (spec §4.4.2): both pawns must retain a path after
// every wall is placed.
func (b *Board) AnyPathExists(p Player) bool {
	_, ok := b.ShortestPath(p)
	return ok
}

// bfsDistance is the shortest-path oracle: a breadth-first search over the implicit
// grid graph defined by Adjacent, layer by layer from start to the nearest cell in
// goalRow. Called thousands of times per second by wall validation, heuristics and
// search, so it allocates a flat visited slice and a plain frontier slice rather
// than a container/list queue.
func bfsDistance(b *Board, start Cell, goalRow int) (int, bool) {
	if start.Row == goalRow {
		return 0, true
	}

	n := b.n
	visited := make([]bool, n*n)
	visited[start.Row*n+start.Col] = true

	frontier := make([]Cell, 0, n)
	frontier = append(frontier, start)

	for dist := 1; len(frontier) > 0; dist++ {
		var next []Cell
		for _, cur := range frontier {
			for _, nb := range neighbors(cur) {
				if !b.InBounds(nb) || visited[nb.Row*n+nb.Col] || !b.Adjacent(cur, nb) {
					continue
				}
				if nb.Row == goalRow {
					return dist, true
				}
				visited[nb.Row*n+nb.Col] = true
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return 0, false
}

func neighbors(c Cell) [4]Cell {
	return [4]Cell{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}
