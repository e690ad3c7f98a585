// Package gridgraph provides an occupancy grid whose live cells know how many
// live neighbors they have. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Construction from text lines or an io.Reader
//   - Single-round and cascading eviction of under-populated cells
//   - Connected components of the surviving cells
//
// Runes equal to the Marker are "live"; any other rune is empty.
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// NewGridGraph constructs a GridGraph from text lines.
// Height is len(lines) and Width is the longest line measured in runes;
// shorter rows are padded with empty cells. Cell (x,y) is live iff the rune
// at column x of lines[y] equals opts.Marker. Unrecognized runes are empty.
// Returns ErrEmptyGrid if there are no rows or every row is empty,
// ErrBadThreshold if opts.Threshold is negative.
// Algorithmic complexity: O(W×H×d) time, O(W×H) memory.
func NewGridGraph(lines []string, opts GridOptions) (*GridGraph, error) {
	if opts.Threshold < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.Threshold)
	}
	w := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}
	h := len(lines)
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn4 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	} else {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		Threshold:       opts.Threshold,
		marker:          opts.Marker,
		cells:           make([]uint8, w*h),
		neighborOffsets: offsets,
	}

	for y, line := range lines {
		x := 0
		for _, r := range line {
			if r == opts.Marker {
				gg.cells[gg.index(x, y)] = 1
				gg.live++
			}
			x++
		}
	}
	gg.recount()

	return gg, nil
}

// FromReader reads newline-separated rows from r and builds a GridGraph.
// Trailing carriage returns are stripped and trailing blank rows dropped.
func FromReader(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return NewGridGraph(lines, opts)
}

// recount performs a full neighbor-count recompute for every live cell.
func (gg *GridGraph) recount() {
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i := gg.index(x, y)
			if gg.cells[i] == 0 {
				continue
			}
			n := 0
			for _, d := range gg.NeighborOffsets() {
				if gg.Live(x+d[0], y+d[1]) {
					n++
				}
			}
			gg.cells[i] = uint8(n + 1)
		}
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Live reports whether (x,y) holds a live cell. Out-of-bounds probes are not live.
// Complexity: O(1).
func (gg *GridGraph) Live(x, y int) bool {
	return gg.InBounds(x, y) && gg.cells[gg.index(x, y)] > 0
}

// Neighbors returns the cached live-neighbor count of (x,y),
// or -1 if the cell is empty or out of bounds.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(x, y int) int {
	if !gg.Live(x, y) {
		return -1
	}
	return int(gg.cells[gg.index(x, y)]) - 1
}

// LiveCount returns the number of live cells.
func (gg *GridGraph) LiveCount() int {
	return gg.live
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Clone returns an independent copy of the grid, including cached counts.
// Complexity: O(W×H).
func (gg *GridGraph) Clone() *GridGraph {
	cp := *gg
	cp.cells = make([]uint8, len(gg.cells))
	copy(cp.cells, gg.cells)
	return &cp
}

// String renders live cells with the grid's marker and empty cells as '.'.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Live(x, y) {
				sb.WriteRune(gg.marker)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
