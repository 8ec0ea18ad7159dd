// Package rangeset implements closed symbol intervals over a totally ordered
// alphabet and the overlap-resolution algorithm that rewrites a multiset of
// possibly-overlapping ranges into a disjoint partition with the same union.
//
// This is the generic-alphabet analogue of the teacher's nfa.ByteClasses:
// where ByteClasses reduces 256 byte values to a handful of equivalence
// classes, Range and Partition do the same job for an arbitrary ordered,
// countable symbol type, using intervals instead of a fixed 256-entry table.
package rangeset

import "cmp"

// Range is a closed interval [Lo, Hi] over a totally ordered symbol type S.
// The zero value is not a valid Range; use New to construct one.
type Range[S cmp.Ordered] struct {
	Lo, Hi S
}

// New constructs a Range[lo, hi]. Constructing a reversed range (lo > hi) is
// a programmer error: it panics synchronously with a *RangeError rather than
// silently producing an unusable value, matching the library's convention
// that contract violations fail loudly at the call site (see SPEC_FULL §7).
func New[S cmp.Ordered](lo, hi S) Range[S] {
	if lo > hi {
		panic(&RangeError{Lo: lo, Hi: hi})
	}
	return Range[S]{Lo: lo, Hi: hi}
}

// Single constructs the singleton range [s, s].
func Single[S cmp.Ordered](s S) Range[S] {
	return Range[S]{Lo: s, Hi: s}
}

// Contains reports whether s falls within the closed interval.
func (r Range[S]) Contains(s S) bool {
	return r.Lo <= s && s <= r.Hi
}

// Overlaps reports whether r and other share at least one symbol.
func (r Range[S]) Overlaps(other Range[S]) bool {
	return r.Hi >= other.Lo && other.Hi >= r.Lo
}

// Join returns the smallest range covering both r and other. The two ranges
// need not overlap or be adjacent; Join always returns their convex hull.
func (r Range[S]) Join(other Range[S]) Range[S] {
	lo, hi := r.Lo, r.Hi
	if other.Lo < lo {
		lo = other.Lo
	}
	if other.Hi > hi {
		hi = other.Hi
	}
	return Range[S]{Lo: lo, Hi: hi}
}

// Equal reports whether r and other denote the same interval.
func (r Range[S]) Equal(other Range[S]) bool {
	return r.Lo == other.Lo && r.Hi == other.Hi
}

// Less orders ranges by (Lo asc, Hi desc), the order the partition
// algorithm (§4.3) keeps its work queue in: when two pending ranges share a
// Lo, the longer one sorts first, so Partition can trim it down to the part
// that extends past the shorter one.
func (r Range[S]) Less(other Range[S]) bool {
	if r.Lo != other.Lo {
		return r.Lo < other.Lo
	}
	return r.Hi > other.Hi
}
