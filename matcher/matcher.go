// Package matcher implements the top-level greedy match driver (SPEC_FULL
// §4.7): given a compiled DFA (or a pattern compiled on demand) and a
// symbol source, it reports the length of the longest matched prefix.
//
// This generalizes the teacher's onepass.DFA.IsMatch byte-class walk to an
// arbitrary ordered symbol and, instead of early-returning at the first
// match state the way IsMatch does (anchored all-or-nothing matching), it
// keeps stepping and remembers the most recent accepting position so
// callers get the longest prefix, not just any match.
package matcher

import (
	"cmp"

	"github.com/Logicalshift/concordance/dfa"
	"github.com/Logicalshift/concordance/pattern"
	"github.com/Logicalshift/concordance/rangeset"
	"github.com/Logicalshift/concordance/symbol"
)

// Matches compiles p over c's symbol alphabet and reports the length of the
// longest prefix of source that p matches, and whether any prefix matched
// (a pattern that accepts the empty sequence matches with length 0). The
// error return surfaces dfa.ErrTooManyStates should p compile to more
// states than dfa.DefaultConfig allows.
func Matches[S cmp.Ordered](source symbol.Reader[S], p pattern.Pattern[S], c rangeset.Counter[S]) (int, bool, error) {
	d, err := p.PrepareToMatch(c)
	if err != nil {
		return 0, false, err
	}
	n, ok := MatchesPrepared(source, d)
	return n, ok, nil
}

// MatchesPrepared drives an already-compiled DFA (from (Pattern).PrepareToMatch)
// against source. It advances greedily — as far as the DFA permits — and
// falls back to the most recent accepting configuration once it gets stuck
// or the source runs dry, per Scenario C (SPEC_FULL §8): "abc" repeated
// forever against "abcabcxy" matches length 6, not the 7 symbols it read
// before getting stuck at "x".
func MatchesPrepared[S cmp.Ordered](source symbol.Reader[S], d *dfa.DFA[S, bool]) (int, bool) {
	state := d.Start()
	consumed := 0
	lastAcceptLen := -1

	if _, ok := d.Finish(state); ok {
		lastAcceptLen = 0
	}

	for {
		sym, ok := source.Next()
		if !ok {
			break
		}

		state = d.Step(state, sym)
		if state == dfa.DeadState {
			break
		}
		consumed++

		if _, ok := d.Finish(state); ok {
			lastAcceptLen = consumed
		}
	}

	if lastAcceptLen < 0 {
		return 0, false
	}
	return lastAcceptLen, true
}
