package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/intervals"
)

// ErrMissingSection indicates day 5 input without the blank line separating
// ranges from ingredient IDs.
var ErrMissingSection = errors.New("puzzle: missing blank line between ranges and IDs")

// Day5 checks ingredient freshness.
// Input is "<low>-<high>" lines, a blank line, then one ID per line.
// Part A: how many listed IDs fall inside some fresh range.
// Part B: how many distinct IDs the fresh ranges cover.
func Day5(r io.Reader) (Answer, error) {
	fresh := intervals.New[int64]()
	sc := bufio.NewScanner(r)
	line := 0
	ranges := true
	var count uint64

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if ranges {
			if text == "" {
				ranges = false
				continue
			}
			iv, err := intervals.ParseInterval(text)
			if err != nil {
				return Answer{}, fmt.Errorf("day 5: line %d: %w", line, err)
			}
			if err := fresh.InsertInterval(iv); err != nil {
				return Answer{}, fmt.Errorf("day 5: line %d: %w", line, err)
			}
			continue
		}
		if text == "" {
			continue
		}
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Answer{}, fmt.Errorf("day 5: line %d: %w", line, err)
		}
		if fresh.Contains(id) {
			count++
		}
	}
	if err := sc.Err(); err != nil {
		return Answer{}, fmt.Errorf("day 5: read input: %w", err)
	}
	if ranges {
		return Answer{}, fmt.Errorf("day 5: %w", ErrMissingSection)
	}

	return Answer{Day: 5, A: count, B: fresh.TotalSize()}, nil
}
