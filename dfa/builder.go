package dfa

import (
	"cmp"

	"github.com/Logicalshift/concordance/internal/conv"
	"github.com/Logicalshift/concordance/rangeset"
)

// Builder assembles a DFA state by state, in discovery order, per the
// emission protocol described in SPEC_FULL §4.6: StartState begins a new
// state, zero or more Transition calls append its sorted, disjoint edge
// list, an optional Accept marks it accepting, and Build closes the table
// with its sentinel. Compile drives a Builder internally during subset
// construction; it is exported so a caller can hand-assemble a DFA without
// going through NDFA/pattern compilation (tests do this to exercise Step and
// Finish in isolation).
type Builder[S cmp.Ordered, O any] struct {
	starts []int32 // edge-table offset at the moment each state was started
	edges  []edge[S]
	accept []acceptEntry[O]
}

// NewBuilder returns an empty Builder.
func NewBuilder[S cmp.Ordered, O any]() *Builder[S, O] {
	return &Builder[S, O]{}
}

// StartState begins a new DFA state and returns its MatchState id. States
// must be started in the order their ids are assigned: the nth StartState
// call returns MatchState(n). Panics (via conv.IntToUint32) if the state
// count has grown past what a MatchState can address — subset construction
// is already bounded by Config.MaxStates well before this could happen, so
// this is a last-ditch guard against a misconfigured or hand-rolled caller.
func (b *Builder[S, O]) StartState() MatchState {
	id := MatchState(conv.IntToUint32(len(b.starts)))
	b.starts = append(b.starts, int32(len(b.edges)))
	b.accept = append(b.accept, acceptEntry[O]{})
	return id
}

// Transition appends a transition to the current (most recently started)
// state. Callers must add transitions in sorted, disjoint range order, per
// the protocol; Build does not re-sort or validate overlap. Panics if no
// state has been started yet.
func (b *Builder[S, O]) Transition(r rangeset.Range[S], target MatchState) {
	if len(b.starts) == 0 {
		panic("dfa: Builder.Transition called before StartState")
	}
	b.edges = append(b.edges, edge[S]{Range: r, Target: target})
}

// Accept marks the current state as accepting output.
func (b *Builder[S, O]) Accept(output O) {
	b.accept[len(b.accept)-1] = acceptEntry[O]{Output: output, HasAccept: true}
}

// Build closes the table and returns the finished DFA.
func (b *Builder[S, O]) Build() (*DFA[S, O], error) {
	stateStart := make([]int32, len(b.starts)+1)
	copy(stateStart, b.starts)
	stateStart[len(b.starts)] = int32(len(b.edges))

	return &DFA[S, O]{
		stateStart: stateStart,
		edges:      b.edges,
		accept:     b.accept,
	}, nil
}
