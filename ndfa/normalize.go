package ndfa

import (
	"github.com/Logicalshift/concordance/rangeset"
)

// NormalizeRanges rewrites every (range, dst) transition in the NDFA so that
// no two distinct transition ranges of any single state overlap unless they
// are equal (§4.4). It builds one global range map from every edge in the
// machine, computes the disjoint partition, and replaces each edge with one
// copy per partition piece contained in the edge's original range.
//
// NormalizeRanges requires a Counter because the underlying partition
// algorithm (rangeset.Partition) needs Next/Prev to split overlapping
// ranges at their boundaries.
func (n *NDFA[S, O]) NormalizeRanges(c rangeset.Counter[S]) {
	var all []rangeset.Range[S]
	for i := range n.states {
		for _, e := range n.states[i].edges {
			all = append(all, e.Range)
		}
	}
	if len(all) == 0 {
		return
	}

	partition := rangeset.Partition(all, c)

	for i := range n.states {
		old := n.states[i].edges
		if len(old) == 0 {
			continue
		}
		var rewritten []Edge[S]
		for _, e := range old {
			for _, piece := range partition {
				if !piece.Overlaps(e.Range) {
					continue
				}
				// piece is entirely contained in e.Range by construction
				// of Partition: every original range is the disjoint
				// union of the pieces it contains.
				rewritten = append(rewritten, Edge[S]{Range: piece, Target: e.Target})
			}
		}
		n.states[i].edges = rewritten
	}
}
