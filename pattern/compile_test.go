package pattern

import (
	"testing"

	"github.com/Logicalshift/concordance/ndfa"
	"github.com/Logicalshift/concordance/rangeset"
)

// run simulates an NDFA directly, without going through the DFA
// compiler, by tracking the set of live states and checking for
// acceptance after each consumed symbol. It returns the greatest offset at
// which any accepting state was live, or -1 if none ever was.
func run(n *ndfa.NDFA[byte, struct{}], start ndfa.StateID, input []byte) int {
	live := map[ndfa.StateID]bool{start: true}
	lastAccept := -1
	if acceptsAny(n, live) {
		lastAccept = 0
	}
	for i, sym := range input {
		next := map[ndfa.StateID]bool{}
		for s := range live {
			for _, e := range n.TransitionsOf(s) {
				if e.Range.Contains(sym) {
					next[e.Target] = true
				}
			}
		}
		live = next
		if len(live) == 0 {
			break
		}
		if acceptsAny(n, live) {
			lastAccept = i + 1
		}
	}
	return lastAccept
}

func acceptsAny(n *ndfa.NDFA[byte, struct{}], live map[ndfa.StateID]bool) bool {
	for s := range live {
		if _, ok := n.AcceptOf(s); ok {
			return true
		}
	}
	return false
}

func compileToNDFA(p Pattern[byte]) (*ndfa.NDFA[byte, struct{}], ndfa.StateID) {
	n := ndfa.New[byte, struct{}]()
	start := n.CreateState(0)
	end := Compile(n, p, start)
	n.SetAccept(end, struct{}{})
	n.NormalizeRanges(rangeset.ByteCounter{})
	return n, start
}

func TestCompileLiteral(t *testing.T) {
	n, start := compileToNDFA(Literal([]byte("abc")))

	if got := run(n, start, []byte("abc")); got != 3 {
		t.Fatalf("run(abc) = %d, want 3", got)
	}
	if got := run(n, start, []byte("ab")); got != -1 {
		t.Fatalf("run(ab) = %d, want -1 (no accept)", got)
	}
}

func TestCompileRange(t *testing.T) {
	n, start := compileToNDFA(RangeOf(byte('0'), byte('9')))

	if got := run(n, start, []byte("5")); got != 1 {
		t.Fatalf("run(\"5\") = %d, want 1", got)
	}
	if got := run(n, start, []byte("x")); got != -1 {
		t.Fatalf("run(\"x\") = %d, want -1", got)
	}
}

func TestCompileAlternation(t *testing.T) {
	p := Literal([]byte("cat")).Or(Literal([]byte("dog")))
	n, start := compileToNDFA(p)

	if got := run(n, start, []byte("cat")); got != 3 {
		t.Fatalf("run(cat) = %d, want 3", got)
	}
	if got := run(n, start, []byte("dog")); got != 3 {
		t.Fatalf("run(dog) = %d, want 3", got)
	}
	if got := run(n, start, []byte("cow")); got != -1 {
		t.Fatalf("run(cow) = %d, want -1", got)
	}
}

func TestCompileSequence(t *testing.T) {
	p := Sequence(Literal([]byte("foo")), RangeOf(byte('0'), byte('9')))
	n, start := compileToNDFA(p)

	if got := run(n, start, []byte("foo5")); got != 4 {
		t.Fatalf("run(foo5) = %d, want 4", got)
	}
}

// TestCompileBoundedRepeat reproduces Scenario D (SPEC_FULL §8): "abc"
// repeated between 2 (inclusive) and 4 (exclusive) times.
func TestCompileBoundedRepeat(t *testing.T) {
	p := Literal([]byte("abc")).Repeat(2, 4)
	n, start := compileToNDFA(p)

	tests := []struct {
		input string
		want  int
	}{
		{"abc", -1},
		{"abcabc", 6},
		{"abcabcabc", 9},
		{"abcabcabcabc", 9}, // upper bound exclusive: at most 3 repeats
	}
	for _, tt := range tests {
		if got := run(n, start, []byte(tt.input)); got != tt.want {
			t.Errorf("run(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// TestCompileUnboundedRepeat reproduces Scenario C (SPEC_FULL §8): "abc"
// repeated forever, minimum 1.
func TestCompileUnboundedRepeat(t *testing.T) {
	p := Literal([]byte("abc")).RepeatForever(1)
	n, start := compileToNDFA(p)

	tests := []struct {
		input string
		want  int
	}{
		{"abc", 3},
		{"abcabc", 6},
		{"abcabcabc", 9},
		{"abcabcxy", 6},
		{"xy", -1},
	}
	for _, tt := range tests {
		if got := run(n, start, []byte(tt.input)); got != tt.want {
			t.Errorf("run(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// TestCompileUnboundedRepeatZero covers the zero-minimum Open Question
// resolution (SPEC_FULL §9): repeatForever(0) accepts the empty input.
func TestCompileUnboundedRepeatZero(t *testing.T) {
	p := Literal([]byte("x")).RepeatForever(0)
	n, start := compileToNDFA(p)

	if got := run(n, start, []byte{}); got != 0 {
		t.Fatalf("run(\"\") = %d, want 0", got)
	}
	if got := run(n, start, []byte("xxx")); got != 3 {
		t.Fatalf("run(\"xxx\") = %d, want 3", got)
	}
}

func TestCompileEmpty(t *testing.T) {
	n, start := compileToNDFA(Empty[byte]())
	if got := run(n, start, []byte{}); got != 0 {
		t.Fatalf("run(\"\") = %d, want 0", got)
	}
}
