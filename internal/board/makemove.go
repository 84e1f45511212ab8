package board

import "chessrules/internal/core"

// undoRecord holds what MakeMove needs to reverse one move.
type undoRecord struct {
	move         Move
	mover        Piece
	captured     Piece
	hadCapture   bool
	castling     CastlingRights
	enPassant    Square
	hasEnPassant bool
	turn         core.Color
}

// MakeMove applies m if it is legal for the side to move and reports
// whether it did. A rejected move leaves the board untouched.
func (b *Board) MakeMove(m Move) bool {
	if m.Type != MoveCastle && (!m.From.Valid() || !m.To.Valid()) {
		return false
	}
	origin := m.origin()
	p, ok := b.pieces[origin]
	if !ok {
		return false
	}
	if p.Color != b.turn {
		return false
	}
	if m.Type == MoveCastle && (p.Kind != King || m.Color != p.Color) {
		return false
	}
	if m.Type == MovePromotion && !m.Promotion.isPromotion() {
		m.Promotion = Queen
	}
	if !containsMove(b.LegalMovesFrom(origin), m) {
		return false
	}

	rec := undoRecord{
		move:         m,
		mover:        p,
		castling:     b.castling,
		enPassant:    b.enPassant,
		hasEnPassant: b.hasEnPassant,
		turn:         b.turn,
	}
	rec.captured, rec.hadCapture = b.capturedBy(m)

	b.movePieces(m)
	b.updateCastling(m, p)

	b.hasEnPassant = false
	if m.Type == MoveNormal && p.Kind == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		b.enPassant = Sq(m.From.File, (m.From.Rank+m.To.Rank)/2)
		b.hasEnPassant = true
	}

	b.turn = core.OppositeColor(b.turn)
	b.history = append(b.history, rec)
	b.refresh()
	return true
}

// UndoMove reverses the most recent MakeMove, restoring captured pieces,
// castling rights, the en-passant target and the side to move.
func (b *Board) UndoMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	m := rec.move

	if m.Type == MoveCastle {
		path := castleGeometry(m.Color, m.Side)
		b.relocate(path.kingTo, path.kingFrom)
		b.relocate(path.rookTo, path.rookFrom)
	} else {
		delete(b.pieces, m.To)
		b.put(rec.mover)
	}
	if rec.hadCapture {
		b.put(rec.captured)
	}

	b.castling = rec.castling
	b.enPassant = rec.enPassant
	b.hasEnPassant = rec.hasEnPassant
	b.turn = rec.turn
	b.refresh()
	return m, true
}

// CanUndo reports whether UndoMove has a move to reverse.
func (b *Board) CanUndo() bool {
	return len(b.history) > 0
}

// capturedBy returns the piece m removes, including an en-passant victim.
func (b *Board) capturedBy(m Move) (Piece, bool) {
	if m.Type == MoveCastle {
		return Piece{}, false
	}
	if p, ok := b.pieces[m.To]; ok {
		return p, true
	}
	mover := b.pieces[m.From]
	if mover.Kind == Pawn && m.From.File != m.To.File && b.hasEnPassant && m.To == b.enPassant {
		behind := Sq(m.To.File, m.From.Rank)
		if p, ok := b.pieces[behind]; ok {
			return p, true
		}
	}
	return Piece{}, false
}

// movePieces performs only the piece movement of m: captures, relocation,
// promotion and the castle rook. Rights, en passant and turn are untouched.
func (b *Board) movePieces(m Move) {
	if m.Type == MoveCastle {
		path := castleGeometry(m.Color, m.Side)
		b.relocate(path.kingFrom, path.kingTo)
		b.relocate(path.rookFrom, path.rookTo)
		return
	}

	if captured, ok := b.capturedBy(m); ok {
		delete(b.pieces, captured.Square)
	}
	b.relocate(m.From, m.To)

	if m.Type == MovePromotion {
		p := b.pieces[m.To]
		p.Kind = m.Promotion
		if !p.Kind.isPromotion() {
			p.Kind = Queen
		}
		b.pieces[m.To] = p
	}
}

func (b *Board) updateCastling(m Move, mover Piece) {
	if m.Type == MoveCastle || mover.Kind == King {
		b.castling.revoke(mover.Color, Kingside)
		b.castling.revoke(mover.Color, Queenside)
		return
	}
	for _, c := range []core.Color{core.ColorWhite, core.ColorBlack} {
		for _, side := range []CastleSide{Kingside, Queenside} {
			corner := castleGeometry(c, side).rookFrom
			if m.From == corner || m.To == corner {
				b.castling.revoke(c, side)
			}
		}
	}
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
