package ndfa

import (
	"testing"

	"github.com/Logicalshift/concordance/rangeset"
)

func TestNormalizeRangesSplitsOverlappingEdges(t *testing.T) {
	n := New[byte, string]()
	n.CreateState(0)
	n.AddTransition(0, rangeset.New(byte('a'), byte('m')), 1)
	n.AddTransition(0, rangeset.New(byte('g'), byte('z')), 2)

	n.NormalizeRanges(rangeset.ByteCounter{})

	edges := n.TransitionsOf(0)
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].Range.Overlaps(edges[j].Range) && !edges[i].Range.Equal(edges[j].Range) {
				t.Fatalf("edges %v and %v overlap without being equal after normalization", edges[i], edges[j])
			}
		}
	}
	if len(edges) < 3 {
		t.Fatalf("TransitionsOf(0) = %v, want at least 3 pieces after splitting the overlap", edges)
	}
}

func TestNormalizeRangesNoEdgesIsNoop(t *testing.T) {
	n := New[byte, string]()
	n.CreateState(0)
	n.NormalizeRanges(rangeset.ByteCounter{})
	if len(n.TransitionsOf(0)) != 0 {
		t.Fatal("NormalizeRanges on an edge-free NDFA introduced edges")
	}
}
