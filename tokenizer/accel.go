package tokenizer

import (
	"cmp"

	"github.com/coregx/ahocorasick"

	"github.com/Logicalshift/concordance/dfa"
	"github.com/Logicalshift/concordance/internal/simd"
	"github.com/Logicalshift/concordance/pattern"
	"github.com/Logicalshift/concordance/symbol"
)

// BytesTokenizer is a byte-alphabet Tokenizer augmented with prefilters
// that accelerate the skip-ahead loop over unmatched stretches of input
// (SPEC_FULL §4.8's "domain-stack wiring"). Two tiers are available:
//
//   - an Aho-Corasick automaton, built when every registered pattern is a
//     plain literal, playing the same role *ahocorasick.Automaton plays as
//     meta.Engine.ahoCorasick in the teacher;
//   - failing that, a start-set table — the set of bytes the DFA can take
//     a transition on from its start state — scanned with
//     internal/simd.IndexInTable, the general case that works for any
//     compiled DFA regardless of pattern shape.
//
// Both sit in front of the authoritative automaton (the DFA) and never
// themselves decide which tokens are emitted; they only narrow down where
// the one-token algorithm next bothers to look.
type BytesTokenizer[O any] struct {
	*Tokenizer[byte, O]
	data      []byte
	automaton *ahocorasick.Automaton
	startSet  *[256]bool
}

// NewFromLiterals builds a BytesTokenizer for data, driven by d. If m's
// registered patterns are all Literal (two or more), it also compiles the
// literals into an Aho-Corasick automaton so the outer tokenize loop can
// jump directly to the next candidate literal occurrence instead of
// single-stepping through unmatched input. Otherwise it falls back to a
// start-set prefilter built from d itself (see BytesTokenizer). Neither
// fast path changes which tokens are produced, only how fast the skip
// loop finds the next candidate.
func NewFromLiterals[O cmp.Ordered](data []byte, m *pattern.TokenMatcher[byte, O], d *dfa.DFA[byte, O]) *BytesTokenizer[O] {
	bt := &BytesTokenizer[O]{
		Tokenizer: New[byte, O](symbol.FromBytes(data), d),
		data:      data,
	}

	if literals, ok := literalsOf(m); ok && len(literals) >= 2 {
		builder := ahocorasick.NewBuilder()
		for _, lit := range literals {
			builder.AddPattern(lit)
		}
		if auto, err := builder.Build(); err == nil {
			bt.automaton = auto
			return bt
		}
		// A malformed literal set (e.g. a duplicate the builder rejects)
		// just means no Aho-Corasick acceleration; fall through to the
		// start-set prefilter below instead.
	}

	bt.startSet = startSetOf(d)
	return bt
}

// startSetOf builds the 256-entry table of bytes that take d's start state
// to anywhere other than dfa.DeadState — every position the one-token
// algorithm could possibly begin a match from. Scanning for the next such
// byte can never skip past a real match, since no match can start on a
// byte outside this set.
func startSetOf[O any](d *dfa.DFA[byte, O]) *[256]bool {
	var table [256]bool
	start := d.Start()
	for b := 0; b < 256; b++ {
		if d.Step(start, byte(b)) != dfa.DeadState {
			table[b] = true
		}
	}
	return &table
}

func literalsOf[O cmp.Ordered](m *pattern.TokenMatcher[byte, O]) ([][]byte, bool) {
	patterns := m.Patterns()
	out := make([][]byte, 0, len(patterns))
	for _, p := range patterns {
		lit, ok := p.AsLiteral()
		if !ok {
			return nil, false
		}
		out = append(out, lit)
	}
	return out, true
}

// SkipInput advances past the current position using whichever prefilter
// is available. With an automaton present, it consults Find for the next
// candidate literal occurrence at or after the current position; with a
// start-set table present (and no automaton), it scans for the next byte
// the DFA could begin a match from. If a candidate is found strictly ahead
// of the current position, SkipInput jumps straight there; otherwise it
// falls back to a single-symbol skip.
func (bt *BytesTokenizer[O]) SkipInput() bool {
	pos := bt.SourcePosition()

	if bt.automaton != nil {
		if m := bt.automaton.Find(bt.data, pos); m != nil && m.Start > pos {
			return bt.advanceTo(m.Start)
		}
		return bt.Tokenizer.SkipInput()
	}

	if bt.startSet != nil {
		if next := simd.IndexInTable(bt.data[pos:], bt.startSet); next > 0 {
			return bt.advanceTo(pos + next)
		}
	}

	return bt.Tokenizer.SkipInput()
}

// advanceTo drives the embedded Tokenizer's plain single-symbol SkipInput
// forward until it reaches target, so the tape's own bookkeeping
// (Rewind/Cut accounting) stays correct regardless of how the jump target
// was found.
func (bt *BytesTokenizer[O]) advanceTo(target int) bool {
	for bt.SourcePosition() < target {
		if !bt.Tokenizer.SkipInput() {
			return false
		}
	}
	return true
}

// TokenizeAll overrides Tokenizer.TokenizeAll to route skip-ahead through
// BytesTokenizer's accelerated SkipInput rather than the embedded
// Tokenizer's plain one, since Go has no virtual dispatch through an
// embedded struct.
func (bt *BytesTokenizer[O]) TokenizeAll() []Token[O] {
	var tokens []Token[O]
	for {
		if tok, ok := bt.NextToken(); ok {
			tokens = append(tokens, tok)
			continue
		}
		if bt.AtEndOfReader() {
			return tokens
		}
		if !bt.SkipInput() {
			return tokens
		}
	}
}
