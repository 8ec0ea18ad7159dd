package pattern

import (
	"cmp"

	"github.com/Logicalshift/concordance/ndfa"
	"github.com/Logicalshift/concordance/rangeset"
)

// Compile compiles p onto n starting at state start, returning the single
// "end" state of the compiled fragment, per the table in SPEC_FULL §4.5.
// The caller is responsible for setting the accept symbol on the returned
// end state and for calling NDFA.NormalizeRanges once the whole pattern (or
// set of patterns sharing one NDFA, see TokenMatcher) has been compiled.
func Compile[S cmp.Ordered, O any](n *ndfa.NDFA[S, O], p Pattern[S], start ndfa.StateID) ndfa.StateID {
	switch p.kind {
	case kindEmpty:
		return start

	case kindLiteral:
		cur := start
		for _, sym := range p.literal {
			next := n.NewState()
			n.AddTransition(cur, rangeset.Single(sym), next)
			cur = next
		}
		return cur

	case kindRange:
		t := n.NewState()
		n.AddTransition(start, p.rng, t)
		return t

	case kindSequence:
		cur := start
		for _, sub := range p.subs {
			cur = Compile(n, sub, cur)
		}
		return cur

	case kindAlternation:
		end := n.NewState()
		for _, sub := range p.subs {
			e := Compile(n, sub, start)
			n.LinkStates(e, end)
		}
		return end

	case kindRepeat:
		return compileBoundedRepeat(n, p, start)

	case kindRepeatForever:
		return compileUnboundedRepeat(n, p, start)

	default:
		panic("pattern: unknown pattern kind")
	}
}

// compileBoundedRepeat implements the Repetition min..max row of SPEC_FULL
// §4.5's compilation table: the body is compiled max times, with a link to
// end installed before each copy whose ordinal (0-based) is >= min. Because
// max is exclusive, the final body copy is never linked to end, capping the
// number of accepted repetitions at max-1.
func compileBoundedRepeat[S cmp.Ordered, O any](n *ndfa.NDFA[S, O], p Pattern[S], start ndfa.StateID) ndfa.StateID {
	end := n.NewState()
	body := p.subs[0]
	cur := start
	for i := 0; i < p.repMax; i++ {
		if i >= p.repMin {
			n.LinkStates(cur, end)
		}
		cur = Compile(n, body, cur)
	}
	return end
}

// compileUnboundedRepeat implements the unbounded-repetition row of
// SPEC_FULL §4.5's compilation table. The body is compiled min+2 times; a
// link to end is installed before each copy at or past the minimum, and the
// end of the final copy links back to the state that copy started from
// (the end of the prior copy), closing the
// loop so arbitrarily many further repetitions are reachable via link
// closure (§4.4) without needing more than min+2 physical copies of body.
func compileUnboundedRepeat[S cmp.Ordered, O any](n *ndfa.NDFA[S, O], p Pattern[S], start ndfa.StateID) ndfa.StateID {
	end := n.NewState()
	body := p.subs[0]
	cur := start
	var prev ndfa.StateID
	for i := 0; i < p.repMin+2; i++ {
		if i >= p.repMin {
			n.LinkStates(cur, end)
		}
		prev = cur
		cur = Compile(n, body, cur)
		if i == p.repMin+1 {
			n.LinkStates(cur, prev)
		}
	}
	return end
}
