package board

import "chessrules/internal/core"

// IsInCheck reports whether c's king is attacked. A board without a king
// of that color is never in check.
func (b *Board) IsInCheck(c core.Color) bool {
	king, ok := b.kingSquare(c)
	if !ok {
		return false
	}
	return b.attacked(king, core.OppositeColor(c))
}

// attacked reports whether any piece of color by has a Normal or
// Promotion move onto sq. Castles never attack.
func (b *Board) attacked(sq Square, by core.Color) bool {
	for _, p := range b.pieces {
		if p.Color != by {
			continue
		}
		for _, m := range b.generate(p, nil) {
			if m.Type != MoveCastle && m.To == sq {
				return true
			}
		}
	}
	return false
}

// verifyChecks keeps the moves that leave the mover's king safe. Castles
// also need the king's start and transit squares to be safe.
func (b *Board) verifyChecks(c core.Color, pseudo []Move) []Move {
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if m.Type == MoveCastle {
			if b.IsInCheck(c) {
				continue
			}
			path := castleGeometry(m.Color, m.Side)
			transit := b.Clone()
			transit.relocate(path.kingFrom, path.kingTransit)
			if transit.IsInCheck(c) {
				continue
			}
		}
		sim := b.Clone()
		sim.movePieces(m)
		if !sim.IsInCheck(c) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFor returns every legal move for color c, whoever is to move.
func (b *Board) LegalMovesFor(c core.Color) []Move {
	return b.verifyChecks(c, b.PseudoLegalMoves(c))
}

// LegalMovesFrom returns the legal moves of the piece on sq, castles
// included when sq holds a king.
func (b *Board) LegalMovesFrom(sq Square) []Move {
	p, ok := b.pieces[sq]
	if !ok {
		return nil
	}
	return b.verifyChecks(p.Color, b.generate(p, nil))
}

// LegalMoves returns the legal moves of both colors, White first.
func (b *Board) LegalMoves() []Move {
	return append(b.LegalMovesFor(core.ColorWhite), b.LegalMovesFor(core.ColorBlack)...)
}

func (b *Board) InCheckmate(c core.Color) bool {
	return b.IsInCheck(c) && len(b.LegalMovesFor(c)) == 0
}

// InStalemate reports that c has no legal moves. Checkmate also satisfies
// this, so callers test InCheckmate first.
func (b *Board) InStalemate(c core.Color) bool {
	return len(b.LegalMovesFor(c)) == 0
}
