// Package intervals maintains a set of closed integer intervals kept as a
// disjoint cover: no two stored intervals overlap or touch.
//
// What:
//
//   - Set[T] stores Interval[T]{Low, High} pairs for any integer type T.
//   - Insert merges a new interval with every stored interval it overlaps or
//     abuts, so [1,5] + [6,9] is kept as [1,9].
//   - Contains answers point membership; TotalSize counts covered integers.
//
// The stored cover is the unique minimal representation of the union of all
// inserted intervals, so it does not depend on insertion order.
//
// Complexity:
//
//   - Insert:    O(n·m) for m merges, O(n) when nothing merges.
//   - Contains:  O(n).
//   - TotalSize: O(n).
//   - Intervals: O(n log n) (sorted copy).
//
// Errors:
//
//   - ErrInvertedRange: Insert or ParseInterval got low > high. The set is unchanged.
//   - ErrBadToken: ParseInterval got text that is not "<low>-<high>".
package intervals
