package rangeset

import (
	"cmp"
	"sort"
)

// Partition rewrites a multiset of possibly-overlapping ranges into a
// sequence of pairwise-disjoint ranges, sorted by Lo, whose union equals the
// union of the input and such that every input range is exactly the
// disjoint union of a subsequence of the output (§4.3, invariant tested in
// SPEC_FULL §8 item 7).
//
// Partition requires a Counter because splitting overlapping ranges at their
// boundaries needs a successor/predecessor operation on S; Range alone only
// needs ordering.
func Partition[S cmp.Ordered](ranges []Range[S], c Counter[S]) []Range[S] {
	if len(ranges) == 0 {
		return nil
	}

	pending := make([]Range[S], len(ranges))
	copy(pending, ranges)
	sort.Slice(pending, func(i, j int) bool { return pending[i].Less(pending[j]) })

	var out []Range[S]

	// pending is treated as a stack of work items, always kept sorted by
	// (Lo asc, Hi desc) at its two lowest elements so the algorithm only
	// ever has to look at the front of the slice.
	for len(pending) > 0 {
		a := pending[0]
		if len(pending) == 1 {
			out = append(out, a)
			pending = pending[1:]
			continue
		}

		b := pending[1]

		if !a.Overlaps(b) {
			out = append(out, a)
			pending = pending[1:]
			continue
		}

		switch {
		case a.Equal(b):
			// Identical ranges collapse into one pending item.
			pending = append(pending[:1], pending[2:]...)

		case a.Lo == b.Lo:
			// a is the longer of two ranges sharing a start: replace a by
			// the part of it that extends past b. b stays pending, so it is
			// still compared with any later range it overlaps before it is
			// emitted.
			remainder := Range[S]{Lo: c.Next(b.Hi), Hi: a.Hi}
			pending = insertSorted(pending[1:], remainder)

		default:
			// a.Lo < b.Lo: emit the prefix of a that precedes b, then
			// requeue b and the overlapping tail of a in sorted order.
			out = append(out, Range[S]{Lo: a.Lo, Hi: c.Prev(b.Lo)})
			tail := Range[S]{Lo: b.Lo, Hi: a.Hi}
			rest := insertSorted(pending[2:], b)
			pending = insertSorted(rest, tail)
		}
	}

	return out
}

// insertSorted inserts r into a slice already sorted by Range.Less,
// preserving that order. The work queues Partition manipulates are always
// small relative to the overall input, so a linear insertion is simpler and
// fast enough in practice.
func insertSorted[S cmp.Ordered](sorted []Range[S], r Range[S]) []Range[S] {
	i := sort.Search(len(sorted), func(i int) bool { return r.Less(sorted[i]) })
	sorted = append(sorted, Range[S]{})
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = r
	return sorted
}

// OverlapsWith returns every piece of the disjoint, Lo-sorted partition P
// that overlaps q.
//
// The original source carries an open question about whether a single-step
// back-scan from the upper-bound index can miss a piece (§9, Open
// Questions). This implementation resolves it conservatively: it finds its
// starting index with binary search (the first piece whose Hi is at least
// q.Lo; every piece before it ends before q begins), then scans forward
// linearly, collecting every piece that overlaps q and stopping once a
// piece's Lo exceeds q.Hi. This trades a constant factor for the correctness guarantee
// exercised by the round-trip property test in SPEC_FULL §8 item 7.
func OverlapsWith[S cmp.Ordered](partition []Range[S], q Range[S]) []Range[S] {
	if len(partition) == 0 {
		return nil
	}

	// The pieces are disjoint and sorted by Lo, so their Hi values are sorted
	// too and the binary search on Hi only skips a prefix that cannot
	// possibly overlap; the scan itself re-checks every candidate.
	start := sort.Search(len(partition), func(i int) bool { return partition[i].Hi >= q.Lo })

	var out []Range[S]
	for i := start; i < len(partition); i++ {
		p := partition[i]
		if p.Lo > q.Hi {
			break
		}
		if p.Overlaps(q) {
			out = append(out, p)
		}
	}
	return out
}
