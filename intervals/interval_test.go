package intervals

import (
	"errors"
	"math"
	"testing"
)

// TestInterval_Touches covers overlap, adjacency and gaps in both orders.
func TestInterval_Touches(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval[int]
		want bool
	}{
		{"Overlap", Interval[int]{1, 5}, Interval[int]{4, 9}, true},
		{"SharedEndpoint", Interval[int]{1, 5}, Interval[int]{5, 15}, true},
		{"Adjacent", Interval[int]{1, 5}, Interval[int]{6, 8}, true},
		{"Gap", Interval[int]{1, 5}, Interval[int]{7, 8}, false},
		{"Contained", Interval[int]{0, 10}, Interval[int]{3, 4}, true},
		{"Far", Interval[int]{math.MinInt, math.MinInt}, Interval[int]{math.MaxInt, math.MaxInt}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Touches(tc.b); got != tc.want {
				t.Errorf("%v.Touches(%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Touches(tc.a); got != tc.want {
				t.Errorf("%v.Touches(%v) = %v; want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

// TestInterval_Len checks sizes including negative bounds.
func TestInterval_Len(t *testing.T) {
	if got := (Interval[int]{-5, 10}).Len(); got != 16 {
		t.Errorf("Len = %d; want 16", got)
	}
	if got := (Interval[int8]{math.MinInt8, math.MaxInt8}).Len(); got != 256 {
		t.Errorf("Len = %d; want 256", got)
	}
}

// TestParseInterval covers well-formed and malformed tokens.
func TestParseInterval(t *testing.T) {
	cases := []struct {
		in   string
		want Interval[int64]
		err  error
	}{
		{"3-5", Interval[int64]{3, 5}, nil},
		{" 10-14\n", Interval[int64]{10, 14}, nil},
		{"-4-2", Interval[int64]{-4, 2}, nil},
		{"7-7", Interval[int64]{7, 7}, nil},
		{"9-3", Interval[int64]{}, ErrInvertedRange},
		{"12", Interval[int64]{}, ErrBadToken},
		{"a-b", Interval[int64]{}, ErrBadToken},
		{"1-", Interval[int64]{}, ErrBadToken},
		{"", Interval[int64]{}, ErrBadToken},
	}
	for _, tc := range cases {
		got, err := ParseInterval(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseInterval(%q) error = %v; want %v", tc.in, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseInterval(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

// TestInsert_SwapRemoveKeepsOthers guards the in-place removal used while merging.
func TestInsert_SwapRemoveKeepsOthers(t *testing.T) {
	var s Set[int]
	for _, iv := range []Interval[int]{{0, 1}, {10, 11}, {20, 21}, {30, 31}} {
		if err := s.InsertInterval(iv); err != nil {
			t.Fatalf("Insert(%v): %v", iv, err)
		}
	}
	if err := s.Insert(9, 12); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if len(s.items) != 4 {
		t.Fatalf("items = %v; want 4 intervals", s.items)
	}
	for _, v := range []int{0, 9, 12, 21, 31} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false after merge", v)
		}
	}
}
