package dfa

import (
	"cmp"
	"hash/fnv"
	"sort"

	"github.com/Logicalshift/concordance/internal/sparse"
	"github.com/Logicalshift/concordance/ndfa"
)

// stateKey canonically identifies a DFA state during subset construction: a
// sorted set of NDFA state ids, hashed the way the teacher's lazy DFA keys
// its determinization cache (FNV-1a over the sorted id bytes). As in the
// teacher's Cache, a key collision between two distinct state sets is
// treated as never happening in practice rather than guarded against.
type stateKey uint64

func computeKey(states []ndfa.StateID) stateKey {
	sorted := make([]ndfa.StateID, len(states))
	copy(sorted, states)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	h := fnv.New64a()
	for _, id := range sorted {
		_, _ = h.Write([]byte{byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24)})
	}
	return stateKey(h.Sum64())
}

// Compile runs subset construction (SPEC_FULL §4.6) over n starting from
// start, producing an immutable DFA. less must be a strict less-than over
// O: two NDFA states folded into the same DFA state by subset construction
// may each carry a different accept symbol, and the merged DFA state's
// output is the one less reports smaller (the tie-break policy in
// SPEC_FULL §4.5/§4.6). CompileOrdered is the convenience entry point for
// the common case where O is itself cmp.Ordered.
//
// Precondition: n.NormalizeRanges has already been called, so every state's
// transition ranges are pairwise disjoint except for equality — both
// pattern.PrepareToMatch and pattern.TokenMatcher.Compile establish this
// before returning their NDFA.
func Compile[S cmp.Ordered, O any](n *ndfa.NDFA[S, O], start ndfa.StateID, config Config, less func(a, b O) bool) (*DFA[S, O], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := NewBuilder[S, O]()

	assigned := map[stateKey]MatchState{}
	var queue [][]ndfa.StateID
	var nextID MatchState

	// dstSet dedups each edge-range group's target states. A SparseSet
	// gives O(1) insert/membership over the known universe of NDFA state
	// ids (n.StateCount()) without a map's per-group allocation and
	// hashing — the same role the teacher's sparse.SparseSet plays tracking
	// visited states during NFA simulation, repurposed here for subset
	// construction's destination-set dedup. It's cleared and reused across
	// every group of every state discovered, not just once.
	dstSet := sparse.NewSparseSet(uint32(n.StateCount()))

	initial := []ndfa.StateID{start}
	assigned[computeKey(initial)] = nextID
	nextID++
	queue = append(queue, initial)

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		// Calling StartState here (rather than at discovery) keeps the
		// Builder's internal id counter in lockstep with nextID: both
		// advance in exactly FIFO discovery order, so the id StartState
		// hands back always equals the id assigned[computeKey(q)] recorded
		// when q was first discovered.
		b.StartState()

		var allEdges []ndfa.Edge[S]
		for _, s := range q {
			allEdges = append(allEdges, n.TransitionsOf(s)...)
		}
		sort.Slice(allEdges, func(i, j int) bool { return allEdges[i].Range.Less(allEdges[j].Range) })

		for i := 0; i < len(allEdges); {
			j := i + 1
			dstSet.Clear()
			dstSet.Insert(uint32(allEdges[i].Target))
			for j < len(allEdges) && allEdges[j].Range.Equal(allEdges[i].Range) {
				dstSet.Insert(uint32(allEdges[j].Target))
				j++
			}

			values := dstSet.Values()
			dsts := make([]ndfa.StateID, len(values))
			for k, id := range values {
				dsts[k] = ndfa.StateID(id)
			}
			sort.Slice(dsts, func(a, c int) bool { return dsts[a] < dsts[c] })

			key := computeKey(dsts)
			target, ok := assigned[key]
			if !ok {
				target = nextID
				assigned[key] = target
				nextID++
				if int(nextID) > config.MaxStates {
					return nil, &CompileError{Err: ErrTooManyStates, States: int(nextID)}
				}
				queue = append(queue, dsts)
			}

			b.Transition(allEdges[i].Range, target)
			i = j
		}

		var best O
		hasBest := false
		for _, s := range q {
			if out, ok := n.AcceptOf(s); ok {
				if !hasBest || less(out, best) {
					best = out
					hasBest = true
				}
			}
		}
		if hasBest {
			b.Accept(best)
		}
	}

	return b.Build()
}

// CompileOrdered is Compile specialized to an O that is itself cmp.Ordered,
// the common case (TokenMatcher output enums, PrepareToMatch's own
// accepted/unit output).
func CompileOrdered[S cmp.Ordered, O cmp.Ordered](n *ndfa.NDFA[S, O], start ndfa.StateID, config Config) (*DFA[S, O], error) {
	return Compile(n, start, config, func(a, b O) bool { return a < b })
}
