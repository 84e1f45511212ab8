// Package oracle counts perft nodes with dragontoothmg, an independent
// bitboard move generator, so the board package can be checked against it.
package oracle

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Divide returns the perft count below each root move, keyed by UCI text.
// fen may omit the move counters.
func Divide(fen string, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	b := dragontoothmg.ParseFen(complete(fen))
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = perft(&b, depth-1)
		unapply()
	}
	return out
}

func Perft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(complete(fen))
	return perft(&b, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// complete pads a four-field FEN with counters; dragontoothmg wants all six.
func complete(fen string) string {
	if len(strings.Fields(fen)) == 4 {
		return fen + " 0 1"
	}
	return fen
}
