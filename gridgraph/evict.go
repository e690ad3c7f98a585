package gridgraph

// EvictRound scans every live cell and returns the row-major indices of those
// with fewer than threshold live neighbors, in ascending order.
//
// Behavior:
//  1. A live cell stores neighbors+1, so it qualifies when its stored value
//     is below threshold+1.
//  2. With cascade=false the grid is left untouched; the result only counts.
//  3. With cascade=true every returned cell is evicted: its stored value is
//     reset to 0 and each still-live neighbor is decremented by one.
//
// A non-positive threshold never evicts anything.
//
// Complexity: O(W·H + k·d) for k evicted cells.
func (gg *GridGraph) EvictRound(threshold int, cascade bool) []int {
	if threshold <= 0 {
		return nil
	}
	var evicted []int
	for i, v := range gg.cells {
		if v > 0 && int(v) < threshold+1 {
			evicted = append(evicted, i)
		}
	}
	if !cascade || len(evicted) == 0 {
		return evicted
	}

	gg.rounds++
	for _, i := range evicted {
		gg.evict(i)
	}
	return evicted
}

// evict marks cell i dead and withdraws it from its live neighbors' counts.
func (gg *GridGraph) evict(i int) {
	gg.cells[i] = 0
	gg.live--
	x, y := gg.Coordinate(i)
	for _, d := range gg.NeighborOffsets() {
		nx, ny := x+d[0], y+d[1]
		if !gg.Live(nx, ny) {
			continue
		}
		gg.cells[gg.index(nx, ny)]--
	}
}

// TotalEvicted sums evicted cells across rounds: exactly one non-mutating
// round when cascade is false, otherwise rounds until one evicts nothing.
// A cascade terminates after at most LiveCount()+1 rounds because every
// non-final round removes at least one cell.
//
// Complexity: O(R·W·H) for R rounds.
func (gg *GridGraph) TotalEvicted(threshold int, cascade bool) uint64 {
	if !cascade {
		return uint64(len(gg.EvictRound(threshold, false)))
	}
	var total uint64
	for {
		n := len(gg.EvictRound(threshold, true))
		if n == 0 {
			return total
		}
		total += uint64(n)
	}
}

// Evict runs TotalEvicted with the threshold configured at construction.
func (gg *GridGraph) Evict(cascade bool) uint64 {
	return gg.TotalEvicted(gg.Threshold, cascade)
}

// Rounds returns how many cascading rounds have removed at least one cell.
func (gg *GridGraph) Rounds() int {
	return gg.rounds
}

// Survivors returns the row-major indices of all live cells in ascending order.
// Complexity: O(W·H).
func (gg *GridGraph) Survivors() []int {
	out := make([]int, 0, gg.live)
	for i, v := range gg.cells {
		if v > 0 {
			out = append(out, i)
		}
	}
	return out
}
