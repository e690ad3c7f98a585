package intervals

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Interval is the closed range [Low, High]. A valid Interval has Low <= High.
type Interval[T constraints.Integer] struct {
	Low, High T
}

// Len returns the number of integers in the interval, High-Low+1.
// It wraps to 0 only for an interval spanning every uint64 value.
func (iv Interval[T]) Len() uint64 {
	return uint64(iv.High) - uint64(iv.Low) + 1
}

// Contains reports whether v lies within [Low, High].
func (iv Interval[T]) Contains(v T) bool {
	return iv.Low <= v && v <= iv.High
}

// Touches reports whether iv and o overlap or are adjacent, i.e. whether
// their union is a single interval. Safe at the bounds of T.
func (iv Interval[T]) Touches(o Interval[T]) bool {
	switch {
	case iv.Low > o.High:
		return iv.Low-o.High == 1
	case o.Low > iv.High:
		return o.Low-iv.High == 1
	default:
		return true
	}
}

// union returns the smallest interval enclosing iv and o.
func (iv Interval[T]) union(o Interval[T]) Interval[T] {
	return Interval[T]{Low: min(iv.Low, o.Low), High: max(iv.High, o.High)}
}

// String formats the interval as "low-high".
func (iv Interval[T]) String() string {
	return fmt.Sprintf("%d-%d", iv.Low, iv.High)
}

// ParseInterval parses a "<low>-<high>" token such as "3-5". Surrounding
// whitespace is ignored and a leading minus sign on low is allowed.
// Errors wrap ErrBadToken or ErrInvertedRange.
func ParseInterval(token string) (Interval[int64], error) {
	token = strings.TrimSpace(token)
	if len(token) < 3 {
		return Interval[int64]{}, fmt.Errorf("%w: %q", ErrBadToken, token)
	}
	sep := strings.IndexByte(token[1:], '-')
	if sep < 0 {
		return Interval[int64]{}, fmt.Errorf("%w: %q", ErrBadToken, token)
	}
	sep++
	low, err := strconv.ParseInt(token[:sep], 10, 64)
	if err != nil {
		return Interval[int64]{}, fmt.Errorf("%w: %q: %w", ErrBadToken, token, err)
	}
	high, err := strconv.ParseInt(token[sep+1:], 10, 64)
	if err != nil {
		return Interval[int64]{}, fmt.Errorf("%w: %q: %w", ErrBadToken, token, err)
	}
	if low > high {
		return Interval[int64]{}, fmt.Errorf("%w: %q", ErrInvertedRange, token)
	}
	return Interval[int64]{Low: low, High: high}, nil
}
