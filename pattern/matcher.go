package pattern

import (
	"cmp"

	"github.com/Logicalshift/concordance/dfa"
	"github.com/Logicalshift/concordance/ndfa"
	"github.com/Logicalshift/concordance/rangeset"
)

// PrepareToMatch compiles a single pattern onto a fresh NDFA for use by a
// boolean matcher (package matcher): the machine accepts at end of input iff
// p matched, with no distinction of which sub-pattern matched since there is
// only one. The accept output is the empty struct; callers that need to
// distinguish among several patterns should use TokenMatcher instead.
//
// This is the NDFA-level half of the pipeline; the (Pattern).PrepareToMatch
// method below carries it the rest of the way to a compiled DFA.
func PrepareToMatch[S cmp.Ordered](p Pattern[S], c rangeset.Counter[S]) *ndfa.NDFA[S, struct{}] {
	n := ndfa.New[S, struct{}]()
	start := n.CreateState(0)
	end := Compile(n, p, start)
	n.SetAccept(end, struct{}{})
	n.NormalizeRanges(c)
	return n
}

// PrepareToMatch compiles p all the way to a ready-to-run DFA (the
// convenience entry point named in SPEC_FULL §6): Accept reports true at
// every position where p matched, false otherwise never appears as an
// output (a non-accepting state simply has no accept entry), so the
// less-than over bool used internally to break subset-construction ties is
// never actually exercised — a single pattern has only one possible accept
// value.
func (p Pattern[S]) PrepareToMatch(c rangeset.Counter[S]) (*dfa.DFA[S, bool], error) {
	n := ndfa.New[S, bool]()
	start := n.CreateState(0)
	end := Compile(n, p, start)
	n.SetAccept(end, true)
	n.NormalizeRanges(c)

	return dfa.Compile(n, start, dfa.DefaultConfig(), func(a, b bool) bool { return !a && b })
}

// TokenMatcher collects a set of (pattern, output) pairs sharing a single
// start state, for use by the tokenizer (§4.8/§6): the combined NDFA accepts
// the output symbol of whichever pattern matched, with ties among patterns
// that accept at the same position broken later, during DFA subset
// construction, by taking the output symbol ordered least (§4.6).
//
// TokenMatcher mirrors the teacher's practice of building one shared
// automaton for a whole token set up front rather than trying each pattern
// independently against the input.
type TokenMatcher[S cmp.Ordered, O cmp.Ordered] struct {
	pairs []tokenPair[S, O]
}

type tokenPair[S cmp.Ordered, O cmp.Ordered] struct {
	pattern Pattern[S]
	output  O
}

// NewTokenMatcher returns an empty TokenMatcher.
func NewTokenMatcher[S cmp.Ordered, O cmp.Ordered]() *TokenMatcher[S, O] {
	return &TokenMatcher[S, O]{}
}

// Add registers a pattern and the output symbol it produces when matched.
// Returns the receiver for chaining.
func (m *TokenMatcher[S, O]) Add(p Pattern[S], output O) *TokenMatcher[S, O] {
	m.pairs = append(m.pairs, tokenPair[S, O]{pattern: p, output: output})
	return m
}

// Compile builds the combined NDFA: one shared start state, with each
// registered pattern compiled as a branch from that start and its end state
// marked accepting with its output symbol.
func (m *TokenMatcher[S, O]) Compile(c rangeset.Counter[S]) *ndfa.NDFA[S, O] {
	n := ndfa.New[S, O]()
	start := n.CreateState(0)
	for _, pair := range m.pairs {
		end := Compile(n, pair.pattern, start)
		n.SetAccept(end, pair.output)
	}
	n.NormalizeRanges(c)
	return n
}

// Patterns returns the registered patterns in registration order, without
// their output symbols. Used by the tokenizer's Aho-Corasick skip-ahead
// wiring to inspect whether every registered pattern is a plain literal.
func (m *TokenMatcher[S, O]) Patterns() []Pattern[S] {
	out := make([]Pattern[S], len(m.pairs))
	for i, pair := range m.pairs {
		out[i] = pair.pattern
	}
	return out
}

// PrepareToMatch compiles the whole token set to a ready-to-run DFA in one
// call (the convenience entry point named in SPEC_FULL §6), equivalent to
// Compile followed by dfa.CompileOrdered.
func (m *TokenMatcher[S, O]) PrepareToMatch(c rangeset.Counter[S], config dfa.Config) (*dfa.DFA[S, O], error) {
	n := m.Compile(c)
	return dfa.CompileOrdered(n, 0, config)
}
