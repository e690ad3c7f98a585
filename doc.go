// Package aoc2025 collects small, self-contained puzzle components and the
// runner that feeds them puzzle input.
//
// What is inside?
//
//	gridgraph/          occupancy grid with cached neighbor counts and
//	                    single-round or cascading eviction of sparse cells
//	intervals/          disjoint cover of closed integer intervals with
//	                    merge-on-insert, membership and total size
//	internal/puzzle/    day solvers: parse the input shape, return both answers
//	internal/config/    YAML + environment configuration for the runner
//	cmd/aoc/            CLI: `aoc run [day...]`, `aoc days`
//
// Quick ASCII example (threshold 4, 8 neighbors):
//
//	@@@      .@.      ...      ...
//	@@@  →   @@@  →   .@.  →   ...
//	@@@      .@.      ...      ...
//
// Corners go first (3 neighbors), then the edges, then the lone center.
//
//	go run ./cmd/aoc run 4 5
package aoc2025
