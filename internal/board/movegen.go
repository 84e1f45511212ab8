package board

import "chessrules/internal/core"

// PseudoLegalMoves returns every move the pieces of color c can make by
// their movement rules alone, ignoring whether the own king is left in check.
func (b *Board) PseudoLegalMoves(c core.Color) []Move {
	var moves []Move
	for _, p := range b.Pieces() {
		if p.Color == c {
			moves = b.generate(p, moves)
		}
	}
	return moves
}

// PseudoLegalMovesFrom returns the pseudo-legal moves of the piece on sq.
func (b *Board) PseudoLegalMovesFrom(sq Square) []Move {
	p, ok := b.pieces[sq]
	if !ok {
		return nil
	}
	return b.generate(p, nil)
}

// generate dispatches on the piece kind and appends to moves.
func (b *Board) generate(p Piece, moves []Move) []Move {
	switch p.Kind {
	case Pawn:
		return b.pawnMoves(p, moves)
	case Knight:
		return b.stepMoves(p, KnightLeaps, moves)
	case Bishop:
		return b.slideMoves(p, Diagonals, moves)
	case Rook:
		return b.slideMoves(p, Orthogonals, moves)
	case Queen:
		return b.slideMoves(p, Compass, moves)
	case King:
		moves = b.stepMoves(p, Compass, moves)
		return b.castleMoves(p, moves)
	default:
		return moves
	}
}

func (b *Board) pawnMoves(p Piece, moves []Move) []Move {
	forward := pawnForward(p.Color)

	if one, ok := p.Square.Increment(forward, 1); ok {
		if _, blocked := b.pieces[one]; !blocked {
			moves = appendPawnMove(moves, p.Square, one)
			if p.Square.Rank == pawnStartRank(p.Color) {
				if two, ok := p.Square.Increment(forward, 2); ok {
					if _, blocked := b.pieces[two]; !blocked {
						moves = append(moves, NormalMove(p.Square, two))
					}
				}
			}
		}
	}

	captures := [2]Direction{NorthWest, NorthEast}
	if p.Color == core.ColorBlack {
		captures = [2]Direction{SouthWest, SouthEast}
	}
	for _, d := range captures {
		to, ok := p.Square.Increment(d, 1)
		if !ok {
			continue
		}
		if target, occupied := b.pieces[to]; occupied {
			if target.Color != p.Color {
				moves = appendPawnMove(moves, p.Square, to)
			}
			continue
		}
		if b.enPassantVictim(p.Color, to) {
			moves = append(moves, NormalMove(p.Square, to))
		}
	}
	return moves
}

// enPassantVictim reports whether a pawn of color c moving diagonally onto
// the empty square to captures en passant.
func (b *Board) enPassantVictim(c core.Color, to Square) bool {
	if !b.hasEnPassant || to != b.enPassant {
		return false
	}
	behind, ok := to.Increment(pawnForward(core.OppositeColor(c)), 1)
	if !ok {
		return false
	}
	victim, ok := b.pieces[behind]
	return ok && victim.Kind == Pawn && victim.Color != c
}

func appendPawnMove(moves []Move, from, to Square) []Move {
	if to.Rank == 0 || to.Rank == 7 {
		for _, k := range PromotionKinds {
			moves = append(moves, PromotionMove(from, to, k))
		}
		return moves
	}
	return append(moves, NormalMove(from, to))
}

// stepMoves covers single-step movers: knight leaps and king steps.
func (b *Board) stepMoves(p Piece, dirs []Direction, moves []Move) []Move {
	for _, d := range dirs {
		to, ok := p.Square.Increment(d, 1)
		if !ok {
			continue
		}
		if target, occupied := b.pieces[to]; occupied && target.Color == p.Color {
			continue
		}
		moves = append(moves, NormalMove(p.Square, to))
	}
	return moves
}

func (b *Board) slideMoves(p Piece, dirs []Direction, moves []Move) []Move {
	for _, d := range dirs {
		for n := 1; ; n++ {
			to, ok := p.Square.Increment(d, n)
			if !ok {
				break
			}
			target, occupied := b.pieces[to]
			if !occupied {
				moves = append(moves, NormalMove(p.Square, to))
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, NormalMove(p.Square, to))
			}
			break
		}
	}
	return moves
}

// castleMoves adds castles whose right is held and whose path is clear.
// Attacked squares are left to the legality filter.
func (b *Board) castleMoves(king Piece, moves []Move) []Move {
	for _, side := range []CastleSide{Kingside, Queenside} {
		if !b.castling.Has(king.Color, side) {
			continue
		}
		path := castleGeometry(king.Color, side)
		if king.Square != path.kingFrom {
			continue
		}
		rook, ok := b.pieces[path.rookFrom]
		if !ok || rook.Kind != Rook || rook.Color != king.Color {
			continue
		}
		clear := true
		for _, sq := range path.between {
			if _, occupied := b.pieces[sq]; occupied {
				clear = false
				break
			}
		}
		if clear {
			moves = append(moves, CastleMove(king.Color, side))
		}
	}
	return moves
}
