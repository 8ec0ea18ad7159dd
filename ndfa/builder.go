package ndfa

import "cmp"

// Builder incrementally constructs an NDFA and validates it before handing
// out the finished machine, following the teacher's builder-protocol
// convention (NewBuilder -> incremental Add* calls -> Build -> *X, error).
//
// Most callers do not need Builder directly: the pattern compiler (package
// pattern) drives an *NDFA returned by New directly, since compilation
// starts from a caller-supplied state rather than a fresh empty machine.
// Builder exists for callers who want the validated construct-then-freeze
// shape without going through the pattern algebra.
type Builder[S cmp.Ordered, O any] struct {
	ndfa  *NDFA[S, O]
	start StateID
}

// NewBuilder creates a Builder around a fresh NDFA with start state 0
// already created.
func NewBuilder[S cmp.Ordered, O any]() *Builder[S, O] {
	n := New[S, O]()
	n.CreateState(0)
	return &Builder[S, O]{ndfa: n, start: 0}
}

// NDFA exposes the underlying machine for direct mutation (AddTransition,
// SetAccept, LinkStates) while building.
func (b *Builder[S, O]) NDFA() *NDFA[S, O] {
	return b.ndfa
}

// Start returns the builder's start state, always 0.
func (b *Builder[S, O]) Start() StateID {
	return b.start
}

// Validate checks that every edge target and link target refers to a state
// that exists.
func (b *Builder[S, O]) Validate() error {
	n := b.ndfa
	count := StateID(len(n.states))
	for i := range n.states {
		for _, e := range n.states[i].edges {
			if e.Target >= count {
				return &BuildError{Message: "edge target out of bounds", State: StateID(i)}
			}
		}
		for _, l := range n.states[i].links {
			if l >= count {
				return &BuildError{Message: "link target out of bounds", State: StateID(i)}
			}
		}
	}
	return nil
}

// Build validates and returns the finished NDFA.
func (b *Builder[S, O]) Build() (*NDFA[S, O], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.ndfa, nil
}
