// Package puzzle turns raw puzzle input into answers using the gridgraph and
// intervals packages. Each day yields two answers, part A and part B.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// ErrUnknownDay indicates no solver is registered for a day.
var ErrUnknownDay = errors.New("puzzle: no solver for day")

// Answer holds both parts of one day's result.
type Answer struct {
	Day  int
	A, B uint64
}

// Lines renders the answer in the runner's output format.
func (a Answer) Lines() [2]string {
	return [2]string{
		fmt.Sprintf("AOC %da: Result: %d", a.Day, a.A),
		fmt.Sprintf("AOC %db: Result: %d", a.Day, a.B),
	}
}

// Options carries per-day tuning into solvers.
type Options struct {
	Grid gridgraph.GridOptions
}

// DefaultOptions returns Options with package defaults.
func DefaultOptions() Options {
	return Options{Grid: gridgraph.DefaultGridOptions()}
}

// Solver reads one day's input and computes its answer.
type Solver func(r io.Reader, opts Options) (Answer, error)

var registry = map[int]Solver{
	4: func(r io.Reader, opts Options) (Answer, error) { return Day4(r, opts.Grid) },
	5: func(r io.Reader, _ Options) (Answer, error) { return Day5(r) },
}

// Lookup returns the solver registered for day.
func Lookup(day int) (Solver, error) {
	s, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days lists the registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
