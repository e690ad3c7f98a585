// Package gridgraph treats a 2D character grid as an occupancy field and
// simulates neighbor-driven eviction of its live cells.
//
// What:
//
//   - GridGraph is built from rectangular text: every rune equal to
//     GridOptions.Marker is a live cell, everything else is empty.
//   - Each live cell caches its live-neighbor count (plus one, so that a
//     stored 0 always means "dead").
//   - EvictRound finds live cells with fewer than Threshold live neighbors and,
//     when cascading, removes them and updates the cached counts around them.
//   - TotalEvicted sums one round, or every round until a fixpoint.
//
// Why:
//
//   - Warehouse/forklift style puzzles: which rolls can be reached, and how
//     many fall away if reachable rolls keep being removed.
//   - Cellular-automaton style erosion: peel a shape down to its stable core.
//
// Coordinates:
//
//   - x is the column, y is the row, both 0-based; (0,0) is the top-left rune.
//   - Cells are stored row-major: index = y*Width + x.
//   - Probes outside [0,Width)×[0,Height) are simply "not live"; there is no
//     wraparound.
//
// Complexity:
//
//   - NewGridGraph:   O(W×H×d), Memory: O(W×H)   (d = 4 or 8 neighbors).
//   - EvictRound:     O(W×H + k×d) for k evicted cells.
//   - TotalEvicted:   O(R×W×H) for R rounds, R ≤ number of live cells.
//   - LiveComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Marker: rune that marks a live cell (default '@').
//   - GridOptions.Threshold: minimum live neighbors a cell needs to stay (default 4).
//   - GridOptions.Conn: Conn8 (default) or Conn4.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or only empty rows.
//   - ErrBadThreshold: negative eviction threshold.
package gridgraph
