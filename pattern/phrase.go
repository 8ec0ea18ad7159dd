package pattern

import "cmp"

// Phrase returns a pattern matching the given symbols in order. It is a
// thin, spread-argument alias for Literal, grounded in the original
// implementation's notion of a "phrase" as a plain sequence of symbols
// matched in order (original_source/src/phrase.rs) — a concept Go's slices
// already cover natively, so there is no separate Phrase type or iterator
// here, only this convenience constructor.
func Phrase[S cmp.Ordered](syms ...S) Pattern[S] {
	return Literal(syms)
}

// PhraseFromString returns a pattern matching the bytes of s in order.
func PhraseFromString(s string) Pattern[byte] {
	return Literal([]byte(s))
}
