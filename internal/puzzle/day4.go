package puzzle

import (
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// Day4 counts paper rolls a forklift can reach.
// Part A: rolls with fewer than opts.Threshold neighboring rolls.
// Part B: rolls removed when reachable rolls keep being taken away,
// computed on a clone so the parsed grid is left as read.
func Day4(r io.Reader, opts gridgraph.GridOptions) (Answer, error) {
	gg, err := gridgraph.FromReader(r, opts)
	if err != nil {
		return Answer{}, fmt.Errorf("day 4: %w", err)
	}
	return Answer{
		Day: 4,
		A:   gg.Evict(false),
		B:   gg.Clone().Evict(true),
	}, nil
}
