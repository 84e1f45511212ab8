package board

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"chessrules/internal/core"
	"chessrules/internal/testutil"
)

func mustFEN(t testing.TB, fen string) *Board {
	t.Helper()
	b, err := FromFEN(fen)
	testutil.AssertNoError(t, err, "FromFEN(%q)", fen)
	return b
}

func mustSq(t testing.TB, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	testutil.AssertNoError(t, err)
	return sq
}

// play applies moves given in UCI form ("e2e4", "e7e8q", "e1g1").
func play(t testing.TB, b *Board, moves ...string) {
	t.Helper()
	for _, uci := range moves {
		var found bool
		for _, m := range b.LegalMovesFor(b.Turn()) {
			if m.UCI() == uci {
				if !b.MakeMove(m) {
					t.Fatalf("MakeMove(%s) = false for a listed legal move", uci)
				}
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %s is not legal in %s", uci, b.PositionFEN())
		}
	}
}

func uciList(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	sort.Strings(out)
	return out
}

func TestStartingPositionMoveCount(t *testing.T) {
	b := NewStandard()
	if got := len(b.LegalMovesFor(core.ColorWhite)); got != 20 {
		t.Errorf("White legal moves = %d, want 20", got)
	}
	if got := len(b.LegalMovesFor(core.ColorBlack)); got != 20 {
		t.Errorf("Black legal moves = %d, want 20", got)
	}
	if got := len(b.LegalMoves()); got != 40 {
		t.Errorf("LegalMoves() = %d, want 40", got)
	}

	play(t, b, "e2e4")
	if got := len(b.LegalMovesFor(core.ColorBlack)); got != 20 {
		t.Errorf("Black legal moves after e4 = %d, want 20", got)
	}
}

func TestPseudoLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "pawn single and double",
			fen:  StartingPlacement,
			from: "e2",
			want: []string{"e2e3", "e2e4"},
		},
		{
			name: "pawn blocked",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3",
			from: "e2",
			want: nil,
		},
		{
			name: "pawn double blocked",
			fen:  "4k3/8/8/8/4n3/8/4P3/4K3",
			from: "e2",
			want: []string{"e2e3"},
		},
		{
			name: "pawn captures enemy only",
			fen:  "4k3/8/8/8/8/3n1N2/4P3/4K3",
			from: "e2",
			want: []string{"e2d3", "e2e3", "e2e4"},
		},
		{
			name: "black pawn moves south",
			fen:  "4k3/3p4/4P3/8/8/8/8/4K3 b",
			from: "d7",
			want: []string{"d7d5", "d7d6", "d7e6"},
		},
		{
			name: "knight in corner",
			fen:  "4k3/8/8/8/8/8/8/N3K3",
			from: "a1",
			want: []string{"a1b3", "a1c2"},
		},
		{
			name: "knight blocked by friend",
			fen:  "4k3/8/8/8/8/1P6/8/N3K3",
			from: "a1",
			want: []string{"a1c2"},
		},
		{
			name: "rook stops at capture and friend",
			fen:  "4k3/8/8/8/R2p4/8/P7/4K3",
			from: "a4",
			want: []string{"a4a3", "a4a5", "a4a6", "a4a7", "a4a8", "a4b4", "a4c4", "a4d4"},
		},
		{
			name: "bishop rays",
			fen:  "4k3/8/8/8/8/8/1p6/B3K3",
			from: "a1",
			want: []string{"a1b2"},
		},
		{
			name: "queen combines rook and bishop",
			fen:  "4k3/8/8/8/8/1P6/PP6/Q3K3",
			from: "a1",
			want: []string{"a1b1", "a1c1", "a1d1"},
		},
		{
			name: "king steps and castles",
			fen:  "4k3/8/8/8/8/8/8/R3K2R",
			from: "e1",
			want: []string{"e1c1", "e1d1", "e1d2", "e1e2", "e1f1", "e1f2", "e1g1"},
		},
		{
			name: "no castle without rights",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w -",
			from: "e1",
			want: []string{"e1d1", "e1d2", "e1e2", "e1f1", "e1f2"},
		},
		{
			name: "no queenside castle through a knight",
			fen:  "4k3/8/8/8/8/8/8/RN2K2R",
			from: "e1",
			want: []string{"e1d1", "e1d2", "e1e2", "e1f1", "e1f2", "e1g1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			got := b.PseudoLegalMovesFrom(mustSq(t, tt.from))
			testutil.AssertEqual(t, uciList(got), tt.want, cmpopts.EquateEmpty())
		})
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	b := mustFEN(t, "8/4P3/8/8/8/8/k7/4K3")
	got := b.LegalMovesFrom(mustSq(t, "e7"))
	want := []Move{
		PromotionMove(mustSq(t, "e7"), mustSq(t, "e8"), Knight),
		PromotionMove(mustSq(t, "e7"), mustSq(t, "e8"), Bishop),
		PromotionMove(mustSq(t, "e7"), mustSq(t, "e8"), Rook),
		PromotionMove(mustSq(t, "e7"), mustSq(t, "e8"), Queen),
	}
	testutil.AssertEqual(t, got, want)
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color core.Color
		want  bool
	}{
		{"start", StartingPlacement, core.ColorWhite, false},
		{"rook on file", "4k3/8/8/8/8/8/8/4R1K1", core.ColorBlack, true},
		{"blocked rook", "4k3/4p3/8/8/8/8/8/4R1K1", core.ColorBlack, false},
		{"knight", "4k3/8/3N4/8/8/8/8/6K1", core.ColorBlack, true},
		{"pawn", "4k3/3P4/8/8/8/8/8/6K1", core.ColorBlack, true},
		{"pawn does not attack forward", "4k3/4P3/8/8/8/8/8/6K1", core.ColorBlack, false},
		{"promoting capture attacks", "3k4/4P3/8/8/8/8/8/4K3 b", core.ColorBlack, true},
		{"no king", "8/8/8/8/8/8/8/R7", core.ColorBlack, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := b.IsInCheck(tt.color); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	for _, fen := range fens {
		b := mustFEN(t, fen)
		for _, c := range []core.Color{core.ColorWhite, core.ColorBlack} {
			for _, m := range b.LegalMovesFor(c) {
				sim := b.Clone()
				sim.movePieces(m)
				if sim.IsInCheck(c) {
					t.Errorf("%s: legal move %v leaves %v in check", fen, m, c)
				}
			}
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b := mustFEN(t, "4r1k1/8/8/8/8/8/4N3/4K3")
	if got := b.LegalMovesFrom(mustSq(t, "e2")); len(got) != 0 {
		t.Errorf("pinned knight moves = %v, want none", got)
	}
}

func TestCastlingSafety(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		wantOO bool
	}{
		{"clear", "4k3/8/8/8/8/8/8/4K2R w K", true},
		{"king in check", "4r1k1/8/8/8/8/8/8/4K2R w K", false},
		{"transit attacked", "5rk1/8/8/8/8/8/8/4K2R w K", false},
		{"destination attacked", "6rk/8/8/8/8/8/8/4K2R w K", false},
		{"rook attacked is fine", "7k/7r/8/8/8/8/8/4K2R w K", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			castle := CastleMove(core.ColorWhite, Kingside)
			got := containsMove(b.LegalMovesFor(core.ColorWhite), castle)
			if got != tt.wantOO {
				t.Errorf("O-O legal = %v, want %v", got, tt.wantOO)
			}
			if !containsMove(b.PseudoLegalMoves(core.ColorWhite), castle) {
				t.Error("O-O missing from pseudo-legal moves")
			}
		})
	}
}

func TestQueensideCastleB1MayBeAttacked(t *testing.T) {
	b := mustFEN(t, "1r2k3/8/8/8/8/8/8/R3K3 w Q")
	if !containsMove(b.LegalMovesFor(core.ColorWhite), CastleMove(core.ColorWhite, Queenside)) {
		t.Error("O-O-O should be legal when only b1 is attacked")
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	t.Run("fool's mate", func(t *testing.T) {
		b := NewStandard()
		play(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
		if !b.InCheckmate(core.ColorWhite) {
			t.Error("InCheckmate(White) = false, want true")
		}
		if got := b.LegalMovesFor(core.ColorWhite); len(got) != 0 {
			t.Errorf("LegalMovesFor(White) = %v, want none", got)
		}
		if b.InCheckmate(core.ColorBlack) {
			t.Error("InCheckmate(Black) = true, want false")
		}
	})

	t.Run("stalemate", func(t *testing.T) {
		b := mustFEN(t, "k7/8/1Q6/8/8/8/8/2K5 b - - 0 1")
		if !b.InStalemate(core.ColorBlack) {
			t.Error("InStalemate(Black) = false, want true")
		}
		if b.InCheckmate(core.ColorBlack) {
			t.Error("InCheckmate(Black) = true, want false")
		}
		if b.IsInCheck(core.ColorBlack) {
			t.Error("IsInCheck(Black) = true, want false")
		}
	})

	t.Run("checkmate is also stalemate by count", func(t *testing.T) {
		b := NewStandard()
		play(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
		if !b.InStalemate(core.ColorWhite) {
			t.Error("InStalemate(White) = false for a mated side")
		}
	})
}
