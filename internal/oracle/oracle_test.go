package oracle

import "testing"

func TestPerftStart(t *testing.T) {
	const start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
	want := []uint64{1, 20, 400, 8902}
	for depth, w := range want {
		if got := Perft(start, depth); got != w {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, w)
		}
	}
}

func TestDivide(t *testing.T) {
	got := Divide("4k3/8/8/8/8/8/8/4K2R w K - 0 1", 1)
	if n := got["e1g1"]; n != 1 {
		t.Errorf("Divide[e1g1] = %d, want 1 (castle in UCI form)", n)
	}
	if len(Divide("4k3/8/8/8/8/8/8/4K2R w K - 0 1", 0)) != 0 {
		t.Error("Divide(0) should be empty")
	}
}
