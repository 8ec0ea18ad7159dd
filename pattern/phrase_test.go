package pattern

import "testing"

func TestPhraseMatchesLiteral(t *testing.T) {
	n, start := compileToNDFA(Phrase(byte('o'), byte('k')))
	if got := run(n, start, []byte("ok")); got != 2 {
		t.Fatalf("run(ok) = %d, want 2", got)
	}
}

func TestPhraseFromString(t *testing.T) {
	n, start := compileToNDFA(PhraseFromString("hello"))
	if got := run(n, start, []byte("hello")); got != 5 {
		t.Fatalf("run(hello) = %d, want 5", got)
	}
	if got := run(n, start, []byte("hell")); got != -1 {
		t.Fatalf("run(hell) = %d, want -1", got)
	}
}
