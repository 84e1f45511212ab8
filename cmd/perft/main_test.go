package main

import (
	"testing"

	"chessrules/internal/testutil"
)

func TestDiff(t *testing.T) {
	got := map[string]uint64{"e2e4": 20, "d2d4": 21, "a1a8": 1}
	want := map[string]uint64{"e2e4": 20, "d2d4": 20, "g1f3": 20}

	testutil.AssertEqual(t, diff(got, want), []string{
		"a1a8: 1, not a legal move for the reference",
		"d2d4: 21, reference has 20",
		"g1f3: missing, reference has 20",
	})
	if d := diff(want, want); len(d) != 0 {
		t.Errorf("diff of equal maps = %v", d)
	}
}
