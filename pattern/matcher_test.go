package pattern

import (
	"testing"

	"github.com/Logicalshift/concordance/ndfa"
	"github.com/Logicalshift/concordance/rangeset"
)

func TestPrepareToMatch(t *testing.T) {
	n := PrepareToMatch(Literal([]byte("ok")), rangeset.ByteCounter{})

	if got := run(n, 0, []byte("ok")); got != 2 {
		t.Fatalf("run(ok) = %d, want 2", got)
	}
	if got := run(n, 0, []byte("no")); got != -1 {
		t.Fatalf("run(no) = %d, want -1", got)
	}
}

// runTokens is like run but for an NDFA with string outputs, returning the
// greatest offset at which any state accepted along with its output symbol.
func runTokens(n *ndfa.NDFA[byte, string], start ndfa.StateID, input []byte) (int, string) {
	live := map[ndfa.StateID]bool{start: true}
	lastAccept, lastOut := -1, ""
	for i := 0; i <= len(input); i++ {
		for s := range live {
			if out, ok := n.AcceptOf(s); ok {
				lastAccept, lastOut = i, out
			}
		}
		if i == len(input) {
			break
		}
		next := map[ndfa.StateID]bool{}
		for s := range live {
			for _, e := range n.TransitionsOf(s) {
				if e.Range.Contains(input[i]) {
					next[e.Target] = true
				}
			}
		}
		live = next
		if len(live) == 0 {
			break
		}
	}
	return lastAccept, lastOut
}

// TestTokenMatcherBranchesReachable reproduces Scenario B (SPEC_FULL §8): two
// patterns whose accepted ranges overlap resolve ties by taking the
// minimum output symbol. This test only checks that both branches are
// individually reachable in the shared NDFA; the minimum tie-break itself
// is enforced by DFA subset construction (package dfa), not here.
func TestTokenMatcherBranchesReachable(t *testing.T) {
	m := NewTokenMatcher[byte, string]()
	m.Add(Sequence(Literal([]byte("a")).RepeatForever(1), Literal([]byte("b"))), "Aaab")
	m.Add(Sequence(Literal([]byte("a")), Literal([]byte("b")).RepeatForever(1)), "Abbb")
	n := m.Compile(rangeset.ByteCounter{})

	if got, out := runTokens(n, 0, []byte("aaab")); got != 4 || out != "Aaab" {
		t.Fatalf("runTokens(aaab) = (%d, %q), want (4, \"Aaab\")", got, out)
	}
	if got, out := runTokens(n, 0, []byte("abbbb")); got != 5 || out != "Abbb" {
		t.Fatalf("runTokens(abbbb) = (%d, %q), want (5, \"Abbb\")", got, out)
	}
}
