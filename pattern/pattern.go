// Package pattern implements the regular-pattern algebra described in
// SPEC_FULL §4.5: an immutable value tree (empty, literal sequence, range,
// sequence, alternation, bounded repetition, unbounded repetition with a
// minimum) and its compilation onto an ndfa.NDFA.
//
// Patterns are built with value combinators (Literal, RangeOf, Append, Or,
// Repeat, RepeatForever) rather than a parsed string syntax: there is no
// external pattern grammar to reject, so pattern construction is type-safe
// Go and has no analogue to the teacher's regexp/syntax.Parse error path
// (§7).
package pattern

import (
	"cmp"

	"github.com/Logicalshift/concordance/rangeset"
)

type kind uint8

const (
	kindEmpty kind = iota
	kindLiteral
	kindRange
	kindSequence
	kindAlternation
	kindRepeat
	kindRepeatForever
)

// Pattern is an immutable value tree over alphabet S. The zero value is the
// Empty pattern.
type Pattern[S cmp.Ordered] struct {
	kind kind

	literal []S             // kindLiteral
	rng     rangeset.Range[S] // kindRange
	subs    []Pattern[S]    // kindSequence, kindAlternation, kindRepeat (single body), kindRepeatForever (single body)

	repMin int // kindRepeat, kindRepeatForever: inclusive minimum
	repMax int // kindRepeat only: exclusive maximum
}

// Empty returns the pattern matching the empty symbol sequence.
func Empty[S cmp.Ordered]() Pattern[S] {
	return Pattern[S]{kind: kindEmpty}
}

// Literal returns a pattern matching exactly the given symbol sequence.
//
// Example:
//
//	p := pattern.Literal([]byte("abc"))
func Literal[S cmp.Ordered](seq []S) Pattern[S] {
	cp := make([]S, len(seq))
	copy(cp, seq)
	return Pattern[S]{kind: kindLiteral, literal: cp}
}

// AsLiteral reports the exact symbol sequence p matches and true, if p was
// built by Literal (or is the fused result of Append-ing only literals); ok
// is false for any other shape. Used by the tokenizer's Aho-Corasick
// skip-ahead wiring (SPEC_FULL §4.8) to recognize which registered patterns
// it can hand to the automaton builder.
func (p Pattern[S]) AsLiteral() ([]S, bool) {
	if p.kind != kindLiteral {
		return nil, false
	}
	return p.literal, true
}

// RangeOf returns a pattern matching a single symbol in the closed interval
// [lo, hi].
func RangeOf[S cmp.Ordered](lo, hi S) Pattern[S] {
	return Pattern[S]{kind: kindRange, rng: rangeset.New(lo, hi)}
}

// Single returns a pattern matching exactly the symbol s, equivalent to
// RangeOf(s, s).
func Single[S cmp.Ordered](s S) Pattern[S] {
	return Pattern[S]{kind: kindRange, rng: rangeset.Single(s)}
}

// Sequence returns a pattern matching each of parts in order.
func Sequence[S cmp.Ordered](parts ...Pattern[S]) Pattern[S] {
	var out Pattern[S]
	if len(parts) == 0 {
		return Empty[S]()
	}
	out = parts[0]
	for _, p := range parts[1:] {
		out = out.Append(p)
	}
	return out
}

// Alternation returns a pattern matching any one of parts.
func Alternation[S cmp.Ordered](parts ...Pattern[S]) Pattern[S] {
	var out Pattern[S]
	if len(parts) == 0 {
		return Empty[S]()
	}
	out = parts[0]
	for _, p := range parts[1:] {
		out = out.Or(p)
	}
	return out
}

// Append returns the pattern matching p followed by q.
//
// Per the external interface (SPEC_FULL §6), Append fuses adjacent literals
// into a single literal and adjacent sequences into one flat sequence, so
// the compiled NDFA's state count tracks the pattern's conceptual size
// rather than the nesting depth of the combinators that built it.
func (p Pattern[S]) Append(q Pattern[S]) Pattern[S] {
	if p.kind == kindEmpty {
		return q
	}
	if q.kind == kindEmpty {
		return p
	}
	if p.kind == kindLiteral && q.kind == kindLiteral {
		fused := make([]S, 0, len(p.literal)+len(q.literal))
		fused = append(fused, p.literal...)
		fused = append(fused, q.literal...)
		return Pattern[S]{kind: kindLiteral, literal: fused}
	}

	pParts := flattenSequence(p)
	qParts := flattenSequence(q)
	merged := make([]Pattern[S], 0, len(pParts)+len(qParts))
	merged = append(merged, pParts...)
	merged = append(merged, qParts...)
	merged = fuseAdjacentLiterals(merged)
	if len(merged) == 1 {
		return merged[0]
	}
	return Pattern[S]{kind: kindSequence, subs: merged}
}

// Or returns the pattern matching p or q.
//
// Per the external interface (SPEC_FULL §6), Or fuses adjacent alternations
// into one flat alternation.
func (p Pattern[S]) Or(q Pattern[S]) Pattern[S] {
	pParts := flattenAlternation(p)
	qParts := flattenAlternation(q)
	merged := make([]Pattern[S], 0, len(pParts)+len(qParts))
	merged = append(merged, pParts...)
	merged = append(merged, qParts...)
	if len(merged) == 1 {
		return merged[0]
	}
	return Pattern[S]{kind: kindAlternation, subs: merged}
}

// Repeat returns a pattern matching p repeated between min (inclusive) and
// max (exclusive) times.
func (p Pattern[S]) Repeat(min, max int) Pattern[S] {
	return Pattern[S]{kind: kindRepeat, subs: []Pattern[S]{p}, repMin: min, repMax: max}
}

// RepeatForever returns a pattern matching p repeated at least min times,
// unbounded above.
func (p Pattern[S]) RepeatForever(min int) Pattern[S] {
	return Pattern[S]{kind: kindRepeatForever, subs: []Pattern[S]{p}, repMin: min}
}

func flattenSequence[S cmp.Ordered](p Pattern[S]) []Pattern[S] {
	if p.kind == kindEmpty {
		return nil
	}
	if p.kind == kindSequence {
		return p.subs
	}
	return []Pattern[S]{p}
}

func flattenAlternation[S cmp.Ordered](p Pattern[S]) []Pattern[S] {
	if p.kind == kindAlternation {
		return p.subs
	}
	return []Pattern[S]{p}
}

func fuseAdjacentLiterals[S cmp.Ordered](parts []Pattern[S]) []Pattern[S] {
	if len(parts) < 2 {
		return parts
	}
	out := make([]Pattern[S], 0, len(parts))
	for _, p := range parts {
		if n := len(out); n > 0 && out[n-1].kind == kindLiteral && p.kind == kindLiteral {
			fused := make([]S, 0, len(out[n-1].literal)+len(p.literal))
			fused = append(fused, out[n-1].literal...)
			fused = append(fused, p.literal...)
			out[n-1] = Pattern[S]{kind: kindLiteral, literal: fused}
			continue
		}
		out = append(out, p)
	}
	return out
}
