package rangeset

import (
	"sort"
	"testing"
)

func TestPartitionDisjointUnchanged(t *testing.T) {
	in := []Range[int]{New(1, 3), New(5, 7)}
	out := Partition(in, IntCounter{})
	if len(out) != 2 {
		t.Fatalf("Partition() = %v, want 2 disjoint ranges unchanged", out)
	}
}

func TestPartitionOverlapping(t *testing.T) {
	// [1,10] and [5,15] overlap; expect three disjoint pieces covering the
	// same union: [1,4] [5,10] [11,15].
	in := []Range[int]{New(1, 10), New(5, 15)}
	out := Partition(in, IntCounter{})

	sort.Slice(out, func(i, j int) bool { return out[i].Lo < out[j].Lo })

	want := []Range[int]{New(1, 4), New(5, 10), New(11, 15)}
	if len(out) != len(want) {
		t.Fatalf("Partition() = %v, want %v", out, want)
	}
	for i := range want {
		if !out[i].Equal(want[i]) {
			t.Fatalf("Partition()[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	assertDisjoint(t, out)
}

func TestPartitionIdenticalRangesCollapse(t *testing.T) {
	in := []Range[int]{New(1, 5), New(1, 5), New(1, 5)}
	out := Partition(in, IntCounter{})
	if len(out) != 1 || !out[0].Equal(New(1, 5)) {
		t.Fatalf("Partition() = %v, want [[1,5]]", out)
	}
}

func TestPartitionSharedLowerBound(t *testing.T) {
	// a.Lo == b.Lo, a shorter: [1,3] and [1,8].
	in := []Range[int]{New(1, 3), New(1, 8)}
	out := Partition(in, IntCounter{})
	sort.Slice(out, func(i, j int) bool { return out[i].Lo < out[j].Lo })
	want := []Range[int]{New(1, 3), New(4, 8)}
	if len(out) != len(want) {
		t.Fatalf("Partition() = %v, want %v", out, want)
	}
	for i := range want {
		if !out[i].Equal(want[i]) {
			t.Fatalf("Partition()[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	if out := Partition[int](nil, IntCounter{}); out != nil {
		t.Fatalf("Partition(nil) = %v, want nil", out)
	}
}

// TestPartitionEveryInputIsUnionOfPieces is the round-trip property test
// mentioned in SPEC_FULL §8 item 7: every original range must equal the
// disjoint union of the partition pieces it overlaps.
func TestPartitionEveryInputIsUnionOfPieces(t *testing.T) {
	inputs := []Range[int]{New(0, 100), New(20, 60), New(50, 50), New(200, 210)}
	out := Partition(inputs, IntCounter{})
	assertDisjoint(t, out)

	for _, in := range inputs {
		pieces := OverlapsWith(out, in)
		if len(pieces) == 0 {
			t.Fatalf("input %v has no covering pieces", in)
		}
		sort.Slice(pieces, func(i, j int) bool { return pieces[i].Lo < pieces[j].Lo })
		if pieces[0].Lo != in.Lo {
			t.Fatalf("input %v: pieces start at %v, want %v", in, pieces[0].Lo, in.Lo)
		}
		if pieces[len(pieces)-1].Hi != in.Hi {
			t.Fatalf("input %v: pieces end at %v, want %v", in, pieces[len(pieces)-1].Hi, in.Hi)
		}
		for i := 1; i < len(pieces); i++ {
			if pieces[i].Lo != pieces[i-1].Hi+1 {
				t.Fatalf("input %v: pieces %v not contiguous", in, pieces)
			}
		}
	}
}

func TestOverlapsWithFindsAllOverlaps(t *testing.T) {
	partition := []Range[int]{New(1, 4), New(5, 10), New(11, 15)}
	got := OverlapsWith(partition, New(3, 12))
	if len(got) != 3 {
		t.Fatalf("OverlapsWith() = %v, want all 3 pieces", got)
	}
}

func TestOverlapsWithNoMatch(t *testing.T) {
	partition := []Range[int]{New(1, 4), New(10, 15)}
	got := OverlapsWith(partition, New(5, 9))
	if len(got) != 0 {
		t.Fatalf("OverlapsWith() = %v, want none", got)
	}
}

func assertDisjoint(t *testing.T, ranges []Range[int]) {
	t.Helper()
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Overlaps(ranges[j]) {
				t.Fatalf("ranges %v and %v overlap", ranges[i], ranges[j])
			}
		}
	}
}
