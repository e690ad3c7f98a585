package gridgraph

// LiveComponents finds all contiguous regions (“islands”) of live cells,
// according to gg.Conn connectivity. Call it after a cascade to see what
// shape the stable core has settled into.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order starting from its lowest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) LiveComponents() [][]int {
	seen := make([]bool, len(gg.cells))
	var comps [][]int

	for i0, v := range gg.cells {
		if v == 0 || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.NeighborOffsets() {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.Live(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
