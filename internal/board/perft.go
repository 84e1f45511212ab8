package board

// Perft counts the leaf nodes of the legal move tree to depth plies from
// the side to move.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMovesFor(b.turn)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		if !b.MakeMove(m) {
			continue
		}
		nodes += b.Perft(depth - 1)
		b.UndoMove()
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by Move.UCI.
func (b *Board) Divide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range b.LegalMovesFor(b.turn) {
		if !b.MakeMove(m) {
			continue
		}
		out[m.UCI()] = b.Perft(depth - 1)
		b.UndoMove()
	}
	return out
}
