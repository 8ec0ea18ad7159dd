package matcher

import (
	"testing"

	"github.com/Logicalshift/concordance/pattern"
	"github.com/Logicalshift/concordance/rangeset"
	"github.com/Logicalshift/concordance/symbol"
)

func TestMatchesLiteral(t *testing.T) {
	p := pattern.Literal([]byte("abc"))

	n, ok, err := Matches(symbol.FromString("abcdef"), p, rangeset.ByteCounter{})
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if !ok || n != 3 {
		t.Fatalf("Matches() = (%d, %v), want (3, true)", n, ok)
	}
}

func TestMatchesRejectsNonPrefixMatch(t *testing.T) {
	p := pattern.Literal([]byte("xyz"))

	n, ok, err := Matches(symbol.FromString("abcdef"), p, rangeset.ByteCounter{})
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if ok || n != 0 {
		t.Fatalf("Matches() = (%d, %v), want (0, false)", n, ok)
	}
}

func TestMatchesEmptyPatternAcceptsLengthZero(t *testing.T) {
	p := pattern.Literal([]byte("a")).Repeat(0, 1)

	n, ok, err := Matches(symbol.FromString("xyz"), p, rangeset.ByteCounter{})
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if !ok || n != 0 {
		t.Fatalf("Matches() = (%d, %v), want (0, true)", n, ok)
	}
}

// TestMatchesScenarioCGreedyBacktrack reproduces Scenario C (SPEC_FULL §8):
// "abc" repeated forever against "abcabcxy" matches the first two full
// repeats (length 6), backing off from the dead end at "xy".
func TestMatchesScenarioCGreedyBacktrack(t *testing.T) {
	p := pattern.Literal([]byte("abc")).RepeatForever(1)

	n, ok, err := Matches(symbol.FromString("abcabcxy"), p, rangeset.ByteCounter{})
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if !ok || n != 6 {
		t.Fatalf("Matches() = (%d, %v), want (6, true)", n, ok)
	}
}

// TestMatchesScenarioDBoundedRepeat reproduces Scenario D (SPEC_FULL §8).
func TestMatchesScenarioDBoundedRepeat(t *testing.T) {
	p := pattern.Literal([]byte("abc")).Repeat(2, 4)

	tests := []struct {
		input  string
		wantOK bool
		wantN  int
	}{
		{"abc", false, 0},
		{"abcabc", true, 6},
		{"abcabcabc", true, 9},
		{"abcabcabcabc", true, 9},
	}
	for _, tt := range tests {
		n, ok, err := Matches(symbol.FromString(tt.input), p, rangeset.ByteCounter{})
		if err != nil {
			t.Fatalf("Matches(%q) error = %v", tt.input, err)
		}
		if ok != tt.wantOK || n != tt.wantN {
			t.Errorf("Matches(%q) = (%d, %v), want (%d, %v)", tt.input, n, ok, tt.wantN, tt.wantOK)
		}
	}
}

func TestMatchesPreparedReusesCompiledDFA(t *testing.T) {
	p := pattern.Literal([]byte("ab")).Or(pattern.Literal([]byte("abc")))
	d, err := p.PrepareToMatch(rangeset.ByteCounter{})
	if err != nil {
		t.Fatalf("PrepareToMatch() error = %v", err)
	}

	n, ok := MatchesPrepared(symbol.FromString("abcd"), d)
	if !ok || n != 3 {
		t.Fatalf("MatchesPrepared() = (%d, %v), want (3, true)", n, ok)
	}

	n, ok = MatchesPrepared(symbol.FromString("abx"), d)
	if !ok || n != 2 {
		t.Fatalf("MatchesPrepared() = (%d, %v), want (2, true)", n, ok)
	}
}
