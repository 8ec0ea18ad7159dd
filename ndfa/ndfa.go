// Package ndfa implements a nondeterministic state machine over symbol
// ranges (§4.4). Unlike a classical Thompson NFA with explicit ε-edges, a
// state may be "linked" to another state: the source then behaves, for
// transition enumeration and accept-symbol lookup, as if it additionally
// carried every edge and the accept symbol of the target, transitively. This
// mirrors the structural role of the teacher's nfa.State/nfa.Builder pair,
// generalized from a fixed byte alphabet to an arbitrary ordered symbol type
// and from single-state epsilon edges to a transitive "borrows from" link.
package ndfa

import (
	"cmp"

	"github.com/Logicalshift/concordance/internal/conv"
	"github.com/Logicalshift/concordance/rangeset"
)

// StateID uniquely identifies a state within an NDFA.
type StateID uint32

// Edge is a single (range, target) transition out of a state.
type Edge[S cmp.Ordered] struct {
	Range  rangeset.Range[S]
	Target StateID
}

// state holds one NDFA state's own (non-inherited) data.
type state[S cmp.Ordered, O any] struct {
	edges   []Edge[S]
	links   []StateID
	accept  O
	hasAccept bool
}

// NDFA is a mutable nondeterministic state machine over symbol ranges S with
// output symbols O. State 0 is conventionally the start state once
// constructed by a Builder, but NDFA itself does not enforce that; it is a
// plain mutable graph.
type NDFA[S cmp.Ordered, O any] struct {
	states []state[S, O]
}

// New returns an empty NDFA with no states.
func New[S cmp.Ordered, O any]() *NDFA[S, O] {
	return &NDFA[S, O]{}
}

// CreateState ensures state id exists, extending the state table with dead
// (transitionless, non-accepting) states as needed. Returns id for chaining.
func (n *NDFA[S, O]) CreateState(id StateID) StateID {
	n.ensure(id)
	return id
}

// NewState appends a fresh state and returns its id. Panics (via
// conv.IntToUint32) if the state table has somehow grown past the range a
// StateID can address — a pattern compiled to billions of NDFA states
// indicates a programming error upstream, not a condition to recover from.
func (n *NDFA[S, O]) NewState() StateID {
	id := StateID(conv.IntToUint32(len(n.states)))
	n.states = append(n.states, state[S, O]{})
	return id
}

// StateCount returns the number of states created so far.
func (n *NDFA[S, O]) StateCount() int {
	return len(n.states)
}

// ensure grows the state slice so that index id is valid.
func (n *NDFA[S, O]) ensure(id StateID) {
	for StateID(len(n.states)) <= id {
		n.states = append(n.states, state[S, O]{})
	}
}

// AddTransition appends an edge from src on r to dst, extending the state
// count to cover both src and dst.
func (n *NDFA[S, O]) AddTransition(src StateID, r rangeset.Range[S], dst StateID) {
	n.ensure(src)
	n.ensure(dst)
	n.states[src].edges = append(n.states[src].edges, Edge[S]{Range: r, Target: dst})
}

// SetAccept records or replaces the accepting output symbol for state.
func (n *NDFA[S, O]) SetAccept(s StateID, output O) {
	n.ensure(s)
	n.states[s].accept = output
	n.states[s].hasAccept = true
}

// LinkStates records that from transitively inherits to's transitions and
// accept symbol. The closure this establishes is computed lazily by
// TransitionsOf/AcceptOf and tolerates cycles (§9, Open Questions): a
// visited-state guard stops the walk once a state is revisited.
func (n *NDFA[S, O]) LinkStates(from, to StateID) {
	n.ensure(from)
	n.ensure(to)
	n.states[from].links = append(n.states[from].links, to)
}

// linkClosure returns the set of states reachable from s via the link
// relation, including s itself, visiting each state at most once.
func (n *NDFA[S, O]) linkClosure(s StateID) []StateID {
	visited := map[StateID]bool{s: true}
	closure := []StateID{s}
	queue := []StateID{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if int(cur) >= len(n.states) {
			continue
		}
		for _, linked := range n.states[cur].links {
			if visited[linked] {
				continue
			}
			visited[linked] = true
			closure = append(closure, linked)
			queue = append(queue, linked)
		}
	}
	return closure
}

// TransitionsOf returns the union of state s's own edges and the edges of
// every state in its link closure. Duplicates are not removed: subset
// construction unions target sets regardless, so duplicate edges are
// harmless (§4.4).
func (n *NDFA[S, O]) TransitionsOf(s StateID) []Edge[S] {
	var out []Edge[S]
	for _, st := range n.linkClosure(s) {
		if int(st) < len(n.states) {
			out = append(out, n.states[st].edges...)
		}
	}
	return out
}

// AcceptOf returns s's own accept symbol if set; otherwise the first accept
// symbol encountered walking the link closure. The second return value is
// false if no state in the closure accepts.
func (n *NDFA[S, O]) AcceptOf(s StateID) (O, bool) {
	for _, st := range n.linkClosure(s) {
		if int(st) < len(n.states) && n.states[st].hasAccept {
			return n.states[st].accept, true
		}
	}
	var zero O
	return zero, false
}
