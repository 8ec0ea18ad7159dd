// Package tokenizer implements the one-token and whole-stream tokenization
// algorithms (SPEC_FULL §4.8): driving a compiled DFA against a rewindable
// Tape, backtracking to the last accepting position the way package
// matcher does for a single match, but repeatedly, to produce an ordered,
// non-overlapping stream of tokens with gaps wherever no pattern matched.
package tokenizer

import (
	"cmp"
	"sync"

	"github.com/Logicalshift/concordance/dfa"
	"github.com/Logicalshift/concordance/symbol"
	"github.com/Logicalshift/concordance/tape"
)

// Token is one recognized span of the input: [Start, End) in source
// symbol positions, carrying the output symbol of whichever pattern
// matched.
type Token[O any] struct {
	Output O
	Start  int
	End    int
}

// Tokenizer drives d against a Tape wrapping source, producing Tokens one
// at a time via NextToken, or the whole stream via TokenizeAll.
type Tokenizer[S cmp.Ordered, O any] struct {
	dfa  *dfa.DFA[S, O]
	tape *tape.Tape[S]
}

// New returns a Tokenizer reading from source and driven by d.
func New[S cmp.Ordered, O any](source symbol.Reader[S], d *dfa.DFA[S, O]) *Tokenizer[S, O] {
	return &Tokenizer[S, O]{dfa: d, tape: tape.New(source)}
}

// AtEndOfReader reports whether the underlying source is exhausted and
// every buffered symbol has already been consumed.
func (t *Tokenizer[S, O]) AtEndOfReader() bool {
	return t.tape.AtEndOfReader()
}

// SourcePosition returns the tape's current absolute read position.
func (t *Tokenizer[S, O]) SourcePosition() int {
	return t.tape.SourcePosition()
}

// NextToken runs the one-token algorithm (SPEC_FULL §4.8): drive the DFA as
// far as it will go from the current position, then rewind to the most
// recent accepting configuration. A zero-length accept is demoted to "no
// token" — nullable patterns like x* must never themselves advance the
// tokenizer, or a stream of non-x input would tokenize forever at the same
// position.
func (t *Tokenizer[S, O]) NextToken() (Token[O], bool) {
	start := t.tape.SourcePosition()
	state := t.dfa.Start()
	consumed := 0

	lastAcceptLen := -1
	var lastOutput O
	if out, ok := t.dfa.Finish(state); ok {
		lastAcceptLen = 0
		lastOutput = out
	}

	for {
		sym, ok := t.tape.Next()
		if !ok {
			break
		}
		state = t.dfa.Step(state, sym)
		if state == dfa.DeadState {
			break
		}
		consumed++
		if out, ok := t.dfa.Finish(state); ok {
			lastAcceptLen = consumed
			lastOutput = out
		}
	}

	end := t.tape.SourcePosition()

	if lastAcceptLen <= 0 {
		t.tape.Rewind(end - start)
		return Token[O]{}, false
	}

	t.tape.Rewind(end - start - lastAcceptLen)
	t.tape.Cut()

	return Token[O]{Output: lastOutput, Start: start, End: start + lastAcceptLen}, true
}

// SkipInput advances the tape by a single symbol without producing a
// token, for the outer tokenize-a-whole-stream loop to call when NextToken
// finds nothing at the current position. Reports false if the source was
// already exhausted.
func (t *Tokenizer[S, O]) SkipInput() bool {
	_, ok := t.tape.Next()
	if ok {
		t.tape.Cut()
	}
	return ok
}

// TokenizeAll drives t to exhaustion, repeatedly requesting the next token
// and skipping one symbol at a time over any unmatched stretch, per
// SPEC_FULL §4.8's "tokenize a whole stream" algorithm. Emitted tokens are
// in strictly ascending Start order and never overlap.
func (t *Tokenizer[S, O]) TokenizeAll() []Token[O] {
	var tokens []Token[O]
	for {
		if tok, ok := t.NextToken(); ok {
			tokens = append(tokens, tok)
			continue
		}
		if t.AtEndOfReader() {
			return tokens
		}
		if !t.SkipInput() {
			return tokens
		}
	}
}

// Pool hands out Tokenizers bound to a fixed DFA, reusing the wrapper
// struct across short-lived tokenization sessions (SPEC_FULL §5): the
// compiled DFA is immutable and shared, only the per-tokenizer tape is
// mutable and owned by its caller, mirroring the teacher's meta.Engine
// split between an immutable compiled automaton and pooled per-search
// state. Purely a performance knob — a pooled Tokenizer behaves
// identically to one built with New.
type Pool[S cmp.Ordered, O any] struct {
	sync.Pool
	dfa *dfa.DFA[S, O]
}

// NewPooled returns a Pool of Tokenizers bound to d.
func NewPooled[S cmp.Ordered, O any](d *dfa.DFA[S, O]) *Pool[S, O] {
	p := &Pool[S, O]{dfa: d}
	p.Pool.New = func() any { return &Tokenizer[S, O]{dfa: d} }
	return p
}

// Get returns a Tokenizer reading from source, reusing a pooled wrapper if
// one is available.
func (p *Pool[S, O]) Get(source symbol.Reader[S]) *Tokenizer[S, O] {
	t := p.Pool.Get().(*Tokenizer[S, O])
	t.tape = tape.New(source)
	return t
}

// Release returns t to the pool. t must not be used again after Release.
func (p *Pool[S, O]) Release(t *Tokenizer[S, O]) {
	t.tape = nil
	p.Pool.Put(t)
}
