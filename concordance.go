// Package concordance implements pattern matching, tokenization, and
// annotated-stream parsing over arbitrary totally-ordered symbol alphabets.
//
// Where a conventional regex engine is fixed to strings of bytes or runes,
// concordance parameterizes its pattern algebra, automaton compilation, and
// tokenizer over any symbol type that is comparable with <, so the same
// machinery matches byte streams, rune streams, or streams of an
// application's own token/event type.
//
// The pipeline is:
//
//	pattern.Pattern[S]       -- build a pattern from literals, ranges, and combinators
//	  .PrepareToMatch(...)    -- compile to a DFA via NDFA subset construction
//	matcher.Matches(...)      -- greedily match a DFA against a symbol.Reader
//	tokenizer.New(...)        -- split a whole stream into a sequence of tokens
//	stream.FromTokenizer(...) -- run a tokenizer to exhaustion into a queryable,
//	                             randomly-addressable annotated stream
//	stream.NewWithTokens(...) -- stack annotated streams into a tree, re-tokenizing
//	                             each level's output to build nested structure
//
// Basic usage:
//
//	digits := pattern.RangeOf[byte]('0', '9').RepeatForever(1)
//	d, err := digits.PrepareToMatch(rangeset.ByteCounter{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, matched := matcher.MatchesPrepared(symbol.FromString("123abc"), d)
//	_ = n
//	_ = matched
//
// Tokenizing a whole stream by output kind:
//
//	m := pattern.NewTokenMatcher[byte, Kind]()
//	m.Add(pattern.RangeOf[byte]('a', 'z').RepeatForever(1), Word)
//	m.Add(pattern.Single[byte](' '), Space)
//	d, err := m.PrepareToMatch(rangeset.ByteCounter{}, dfa.DefaultConfig())
//	tokens := tokenizer.New[byte, Kind](symbol.FromString("ab cd"), d).TokenizeAll()
package concordance

import (
	"cmp"

	"github.com/Logicalshift/concordance/dfa"
	"github.com/Logicalshift/concordance/matcher"
	"github.com/Logicalshift/concordance/pattern"
	"github.com/Logicalshift/concordance/rangeset"
	"github.com/Logicalshift/concordance/stream"
	"github.com/Logicalshift/concordance/symbol"
	"github.com/Logicalshift/concordance/tokenizer"
)

// Pattern is an alias for pattern.Pattern, re-exported as the library's
// front door the way the teacher's top-level Regex sat over meta.Engine.
type Pattern[S cmp.Ordered] = pattern.Pattern[S]

// TokenMatcher is an alias for pattern.TokenMatcher.
type TokenMatcher[S cmp.Ordered, O cmp.Ordered] = pattern.TokenMatcher[S, O]

// DFA is an alias for dfa.DFA, the compiled automaton both Matches and
// tokenizer.New run against.
type DFA[S cmp.Ordered, O any] = dfa.DFA[S, O]

// Token is an alias for tokenizer.Token.
type Token[O any] = tokenizer.Token[O]

// AnnotatedStream is an alias for stream.AnnotatedStream.
type AnnotatedStream[S cmp.Ordered, O any] = stream.AnnotatedStream[S, O]

// TreeStream is an alias for stream.TreeStream.
type TreeStream[S cmp.Ordered, O cmp.Ordered] = stream.TreeStream[S, O]

// Reader is an alias for symbol.Reader, the pull-style symbol source every
// matching and tokenizing operation reads from (the tokenizer wraps it in a
// rewindable tape).
type Reader[S any] = symbol.Reader[S]

// Config is an alias for dfa.Config.
type Config = dfa.Config

// Literal builds a Pattern matching seq exactly, in order.
func Literal[S cmp.Ordered](seq []S) Pattern[S] {
	return pattern.Literal(seq)
}

// RangeOf builds a Pattern matching any single symbol in [lo, hi].
func RangeOf[S cmp.Ordered](lo, hi S) Pattern[S] {
	return pattern.RangeOf(lo, hi)
}

// Single builds a Pattern matching exactly one occurrence of s.
func Single[S cmp.Ordered](s S) Pattern[S] {
	return pattern.Single(s)
}

// Sequence builds a Pattern matching each of parts in order.
func Sequence[S cmp.Ordered](parts ...Pattern[S]) Pattern[S] {
	return pattern.Sequence(parts...)
}

// Alternation builds a Pattern matching any one of parts.
func Alternation[S cmp.Ordered](parts ...Pattern[S]) Pattern[S] {
	return pattern.Alternation(parts...)
}

// Phrase builds a Pattern matching the literal sequence syms.
func Phrase[S cmp.Ordered](syms ...S) Pattern[S] {
	return pattern.Phrase(syms...)
}

// PhraseFromString builds a byte Pattern matching s literally.
func PhraseFromString(s string) Pattern[byte] {
	return pattern.PhraseFromString(s)
}

// NewTokenMatcher returns an empty TokenMatcher ready to accumulate
// (Pattern, output) rules via Add.
func NewTokenMatcher[S cmp.Ordered, O cmp.Ordered]() *TokenMatcher[S, O] {
	return pattern.NewTokenMatcher[S, O]()
}

// DefaultConfig returns the default DFA compilation limits.
func DefaultConfig() Config {
	return dfa.DefaultConfig()
}

// Matches runs a one-shot greedy match of p against source, compiling p to a
// DFA on the fly. Prefer PrepareToMatch plus MatchesPrepared when matching
// the same pattern against many inputs.
func Matches[S cmp.Ordered](source Reader[S], p Pattern[S], c rangeset.Counter[S]) (int, bool, error) {
	return matcher.Matches(source, p, c)
}

// MatchesPrepared runs a one-shot greedy match of an already-compiled DFA
// against source.
func MatchesPrepared[S cmp.Ordered](source Reader[S], d *DFA[S, bool]) (int, bool) {
	return matcher.MatchesPrepared(source, d)
}

// NewTokenizer returns a Tokenizer that splits source into tokens according
// to d, the way tokenizer.New does.
func NewTokenizer[S cmp.Ordered, O any](source Reader[S], d *DFA[S, O]) *tokenizer.Tokenizer[S, O] {
	return tokenizer.New[S, O](source, d)
}

// FromTokenizer runs a tokenizer over source to exhaustion and returns the
// resulting AnnotatedStream, recording both the consumed input and the
// ordered token list.
func FromTokenizer[S cmp.Ordered, O any](d *DFA[S, O], source Reader[S]) *AnnotatedStream[S, O] {
	return stream.FromTokenizer(d, source)
}

// NewTreeStream wraps base as the bottom layer of a TreeStream, ready for
// TokenizeTopLevel/RunToFixedPoint to stack re-tokenized layers on top.
func NewTreeStream[S cmp.Ordered, O cmp.Ordered](base *AnnotatedStream[S, O]) *TreeStream[S, O] {
	return stream.NewWithTokens(base)
}
