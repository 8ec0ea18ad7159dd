// Package stream implements the annotated and tree streams (SPEC_FULL
// §4.9/§4.10): the structures that let a caller recover, for any position
// in a tokenized input, which token it belongs to and what the original
// symbols were — and, for TreeStream, repeatedly re-tokenize a stream's own
// token output to build up a parse tree one level at a time.
package stream

import (
	"cmp"
	"sort"

	"github.com/Logicalshift/concordance/dfa"
	"github.com/Logicalshift/concordance/symbol"
	"github.com/Logicalshift/concordance/tokenizer"
)

// AnnotatedStream is the result of running a tokenizer to exhaustion: the
// consumed input, plus the ordered, non-overlapping list of tokens it
// produced (SPEC_FULL §4.9). Token storage is append-only once built.
type AnnotatedStream[S cmp.Ordered, O any] struct {
	input  []S
	tokens []tokenizer.Token[O]
}

// capturingReader records every symbol it passes through, in order, into
// *out. Wrapping the raw source (not the tokenizer's internal tape) means
// each symbol is captured exactly once regardless of how much lookahead
// and rewinding the tokenizer does internally.
type capturingReader[S any] struct {
	source symbol.Reader[S]
	out    *[]S
}

func (c *capturingReader[S]) Next() (S, bool) {
	v, ok := c.source.Next()
	if ok {
		*c.out = append(*c.out, v)
	}
	return v, ok
}

// FromTokenizer tokenizes source to exhaustion with d and returns the
// resulting AnnotatedStream, capturing every symbol read from source along
// the way.
func FromTokenizer[S cmp.Ordered, O any](d *dfa.DFA[S, O], source symbol.Reader[S]) *AnnotatedStream[S, O] {
	var input []S
	tz := tokenizer.New[S, O](&capturingReader[S]{source: source, out: &input}, d)
	tokens := tz.TokenizeAll()

	return &AnnotatedStream[S, O]{input: input, tokens: tokens}
}

// OutputLen returns the number of tokens in the stream.
func (a *AnnotatedStream[S, O]) OutputLen() int {
	return len(a.tokens)
}

// InputLen returns the number of input symbols captured while building the
// stream (including any that fell in gaps between tokens).
func (a *AnnotatedStream[S, O]) InputLen() int {
	return len(a.input)
}

// InputForRange returns the captured input symbols in [start, end).
func (a *AnnotatedStream[S, O]) InputForRange(start, end int) []S {
	return a.input[start:end]
}

// ReadInput streams the original input symbols.
func (a *AnnotatedStream[S, O]) ReadInput() symbol.Reader[S] {
	return symbol.FromSlice(a.input)
}

// ReadOutput streams the token output symbols, in order.
func (a *AnnotatedStream[S, O]) ReadOutput() symbol.Reader[O] {
	outputs := make([]O, len(a.tokens))
	for i, tok := range a.tokens {
		outputs[i] = tok.Output
	}
	return symbol.FromSlice(outputs)
}

// ReadTokens streams the whole Token values, in order.
func (a *AnnotatedStream[S, O]) ReadTokens() symbol.Reader[tokenizer.Token[O]] {
	return symbol.FromSlice(a.tokens)
}

// Tokens returns the underlying token slice directly (a read-only view;
// callers must not mutate it). TreeStream uses this to walk a layer's
// tokens while filling gaps from the layer beneath.
func (a *AnnotatedStream[S, O]) Tokens() []tokenizer.Token[O] {
	return a.tokens
}

// findTokenIndex locates the token whose Start matches position exactly,
// or (failing that) the token that contains it. ok is true when such a
// token exists; when ok is false, index is where a token starting exactly
// at position would be inserted.
func (a *AnnotatedStream[S, O]) findTokenIndex(position int) (index int, ok bool) {
	n := len(a.tokens)
	i := sort.Search(n, func(i int) bool { return a.tokens[i].Start >= position })

	if i < n && a.tokens[i].Start == position {
		return i, true
	}
	if i == 0 {
		return 0, false
	}
	if a.tokens[i-1].End > position {
		return i - 1, true
	}
	return i, false
}

// FindToken reports the token covering position, if one exists.
func (a *AnnotatedStream[S, O]) FindToken(position int) (tokenizer.Token[O], bool) {
	index, ok := a.findTokenIndex(position)
	if !ok {
		var zero tokenizer.Token[O]
		return zero, false
	}
	return a.tokens[index], true
}

// ReadTokensInRange streams every token overlapping [from, to): starting
// from the token containing from (even when that token's own Start lies
// before from), through every subsequent token whose Start is before to.
func (a *AnnotatedStream[S, O]) ReadTokensInRange(from, to int) symbol.Reader[tokenizer.Token[O]] {
	n := len(a.tokens)
	start, _ := a.findTokenIndex(from)

	end := start
	for end < n && a.tokens[end].Start < to {
		end++
	}

	out := make([]tokenizer.Token[O], end-start)
	copy(out, a.tokens[start:end])
	return symbol.FromSlice(out)
}
