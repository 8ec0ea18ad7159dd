// Package dfa implements the table-encoded deterministic automaton produced
// by subset construction over an ndfa.NDFA (SPEC_FULL §4.6), generalized
// from the teacher's byte-indexed lazy/one-pass DFAs to an arbitrary ordered
// symbol alphabet addressed by range lookup instead of a 256-entry table.
package dfa

import (
	"cmp"
	"sort"

	"github.com/Logicalshift/concordance/rangeset"
)

// MatchState identifies a state within a compiled DFA. The zero value is
// always the start state (Start always returns 0, per the builder
// protocol's state-0-first discovery order). DeadState is the universal
// reject trap: no transition ever leaves it and it never accepts.
type MatchState uint32

// DeadState is the sentinel MatchState a Step that finds no matching
// transition returns, mirroring the teacher's DeadState convention in
// dfa/onepass.
const DeadState MatchState = ^MatchState(0)

// edge is one (range, target) transition, stored flat and sorted per state.
type edge[S cmp.Ordered] struct {
	Range  rangeset.Range[S]
	Target MatchState
}

type acceptEntry[O any] struct {
	Output    O
	HasAccept bool
}

// DFA is an immutable, table-encoded deterministic automaton. Once built, a
// DFA has no interior mutability and may be shared freely across goroutines
// (SPEC_FULL §9): every read only touches these slices.
type DFA[S cmp.Ordered, O any] struct {
	stateStart []int32 // length numStates+1; edges[stateStart[s]:stateStart[s+1]] is state s's sorted edge list
	edges      []edge[S]
	accept     []acceptEntry[O]
}

// Start returns the DFA's initial state.
func (d *DFA[S, O]) Start() MatchState {
	return 0
}

// Step returns the state reached from state on symbol sym, or DeadState if
// no transition covers sym. Step on DeadState always returns DeadState.
func (d *DFA[S, O]) Step(state MatchState, sym S) MatchState {
	if state == DeadState || int(state) >= len(d.stateStart)-1 {
		return DeadState
	}
	lo, hi := d.stateStart[state], d.stateStart[state+1]
	edges := d.edges[lo:hi]

	i := sort.Search(len(edges), func(i int) bool { return edges[i].Range.Hi >= sym })
	if i < len(edges) && edges[i].Range.Contains(sym) {
		return edges[i].Target
	}
	return DeadState
}

// Finish reports the accept output for state, if state is accepting.
func (d *DFA[S, O]) Finish(state MatchState) (O, bool) {
	if state == DeadState || int(state) >= len(d.accept) {
		var zero O
		return zero, false
	}
	a := d.accept[state]
	return a.Output, a.HasAccept
}

// Stats reports the size of the compiled table, a supplemental introspection
// hook (SPEC_FULL §8) useful for tuning Config.MaxStates.
type Stats struct {
	NumStates int
	NumEdges  int
}

// Stats returns the size of the compiled DFA.
func (d *DFA[S, O]) Stats() Stats {
	return Stats{
		NumStates: len(d.stateStart) - 1,
		NumEdges:  len(d.edges),
	}
}
