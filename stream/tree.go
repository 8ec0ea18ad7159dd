package stream

import (
	"cmp"

	"github.com/Logicalshift/concordance/dfa"
	"github.com/Logicalshift/concordance/symbol"
	"github.com/Logicalshift/concordance/tokenizer"
)

// TreeStream is a hierarchical parse structure (SPEC_FULL §4.10): a base
// AnnotatedStream tokenizing the original input (alphabet S, token type O),
// plus a stack of higher layers, each an AnnotatedStream[O, O] built by
// re-tokenizing the "read-through" of the layer below it. The read-through
// of a layer is its token output interleaved with the raw underlying
// symbols that fall in the gaps between tokens — so every higher layer
// still covers the whole of the layer beneath it, matched tokens and all,
// letting a re-tokenization pass that only recognizes some of a layer's
// tokens pass the rest through unchanged to the next level up.
type TreeStream[S cmp.Ordered, O cmp.Ordered] struct {
	base   *AnnotatedStream[S, O]
	layers []*AnnotatedStream[O, O]
}

// NewWithTokens builds a single-level TreeStream from an already-built base
// tokenization (e.g. the result of FromTokenizer run over raw source
// symbols with a lexer's DFA).
func NewWithTokens[S cmp.Ordered, O cmp.Ordered](base *AnnotatedStream[S, O]) *TreeStream[S, O] {
	return &TreeStream[S, O]{base: base}
}

// Depth reports how many layers the tree currently has: 1 for just the
// base, or more once TokenizeTopLevel has been called.
func (t *TreeStream[S, O]) Depth() int {
	return len(t.layers) + 1
}

// ReadInput streams the original base-layer symbols.
func (t *TreeStream[S, O]) ReadInput() symbol.Reader[S] {
	return t.base.ReadInput()
}

// readThrough returns the token output of a layer interleaved with the raw
// symbols underneath it wherever the layer's tokens leave a gap, so the
// result covers every position of the layer's own input exactly once.
func readThrough[O cmp.Ordered](layer *AnnotatedStream[O, O]) []tokenizer.Token[O] {
	var out []tokenizer.Token[O]
	lastEnd := 0

	fillGap := func(from, to int) {
		for _, sym := range layer.InputForRange(from, to) {
			out = append(out, tokenizer.Token[O]{Output: sym, Start: from, End: from + 1})
			from++
		}
	}

	for _, tok := range layer.Tokens() {
		if tok.Start > lastEnd {
			fillGap(lastEnd, tok.Start)
		}
		out = append(out, tok)
		lastEnd = tok.End
	}
	if layer.InputLen() > lastEnd {
		fillGap(lastEnd, layer.InputLen())
	}
	return out
}

// ReadLevelTokens returns the read-through tokens of the layer at depth (0
// is the current top level, increasing toward the base). depth ==
// len(layers) is the base layer itself: its tokens come straight from the
// original tokenizer pass, so there is no gap to fill — input symbols the
// base tokenizer skipped (e.g. whitespace) were never meant to survive
// into the tree, unlike a higher layer's skipped tokens, which are already
// first-class values of type O and must be passed through.
func (t *TreeStream[S, O]) ReadLevelTokens(depth int) []tokenizer.Token[O] {
	if depth == len(t.layers) {
		tokens := make([]tokenizer.Token[O], len(t.base.Tokens()))
		copy(tokens, t.base.Tokens())
		return tokens
	}

	level := t.layers[len(t.layers)-1-depth]
	return readThrough(level)
}

// ReadLevel returns just the output symbols of ReadLevelTokens(depth).
func (t *TreeStream[S, O]) ReadLevel(depth int) []O {
	tokens := t.ReadLevelTokens(depth)
	out := make([]O, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Output
	}
	return out
}

// TokenizeTopLevel re-tokenizes the read-through of the current top level
// with d and pushes the result as a new top level, returning the number of
// tokens the new level contains.
func (t *TreeStream[S, O]) TokenizeTopLevel(d *dfa.DFA[O, O]) int {
	next := FromTokenizer(d, symbol.FromSlice(t.ReadLevel(0)))
	t.layers = append(t.layers, next)
	return next.OutputLen()
}

// RunToFixedPoint repeatedly calls TokenizeTopLevel, stopping once a pass
// produces no tokens at all (the reducer made no progress whatsoever) or
// the new top level has shrunk to a single symbol (a fully-parsed root),
// or once maxDepth new layers have been pushed, whichever comes first. It
// returns the number of layers actually pushed.
func (t *TreeStream[S, O]) RunToFixedPoint(d *dfa.DFA[O, O], maxDepth int) int {
	pushed := 0
	for pushed < maxDepth {
		numTokens := t.TokenizeTopLevel(d)
		pushed++
		if numTokens == 0 || len(t.ReadLevel(0)) <= 1 {
			break
		}
	}
	return pushed
}
