package board

import (
	"fmt"
	"sort"
	"strings"

	"chessrules/internal/core"
)

// CastlingRights only ever go from true to false during a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

func allCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

func (r CastlingRights) Has(c core.Color, side CastleSide) bool {
	switch {
	case c == core.ColorWhite && side == Kingside:
		return r.WhiteKingside
	case c == core.ColorWhite:
		return r.WhiteQueenside
	case side == Kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

func (r *CastlingRights) revoke(c core.Color, side CastleSide) {
	switch {
	case c == core.ColorWhite && side == Kingside:
		r.WhiteKingside = false
	case c == core.ColorWhite:
		r.WhiteQueenside = false
	case side == Kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// String renders the FEN castling field ("KQkq", "-").
func (r CastlingRights) String() string {
	var sb strings.Builder
	if r.WhiteKingside {
		sb.WriteByte('K')
	}
	if r.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if r.BlackKingside {
		sb.WriteByte('k')
	}
	if r.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Board is the mutable position: sparse piece map, side to move,
// castling rights and en-passant target. Mutate it through MakeMove,
// UndoMove, Place and Remove only.
type Board struct {
	pieces       map[Square]Piece
	turn         core.Color
	castling     CastlingRights
	enPassant    Square
	hasEnPassant bool
	fen          string
	history      []undoRecord
}

// New returns an empty board: no pieces, all castling rights, White to move.
func New() *Board {
	b := &Board{
		pieces:   make(map[Square]Piece),
		turn:     core.ColorWhite,
		castling: allCastlingRights(),
	}
	b.refresh()
	return b
}

var backRankOrder = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandard returns the 32-piece starting position.
func NewStandard() *Board {
	b := New()
	for file, kind := range backRankOrder {
		b.put(Piece{Kind: kind, Color: core.ColorWhite, Square: Sq(file, 0)})
		b.put(Piece{Kind: Pawn, Color: core.ColorWhite, Square: Sq(file, 1)})
		b.put(Piece{Kind: Pawn, Color: core.ColorBlack, Square: Sq(file, 6)})
		b.put(Piece{Kind: kind, Color: core.ColorBlack, Square: Sq(file, 7)})
	}
	b.refresh()
	return b
}

func (b *Board) Piece(sq Square) (Piece, bool) {
	p, ok := b.pieces[sq]
	return p, ok
}

// Pieces lists every piece ordered by rank, then file.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Square.Rank != out[j].Square.Rank {
			return out[i].Square.Rank < out[j].Square.Rank
		}
		return out[i].Square.File < out[j].Square.File
	})
	return out
}

func (b *Board) Turn() core.Color {
	return b.turn
}

func (b *Board) Castling() CastlingRights {
	return b.castling
}

// EnPassant returns the square a pawn may capture onto this ply, if any.
func (b *Board) EnPassant() (Square, bool) {
	return b.enPassant, b.hasEnPassant
}

// FEN returns the cached piece-placement field.
func (b *Board) FEN() string {
	return b.fen
}

// Place puts p on p.Square, replacing any occupant. Editing the position
// discards undo history.
func (b *Board) Place(p Piece) error {
	if !p.Square.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidSquare, p.Square)
	}
	if p.Kind < Pawn || p.Kind > King {
		return fmt.Errorf("invalid piece kind %d", p.Kind)
	}
	if p.Color != core.ColorWhite && p.Color != core.ColorBlack {
		return fmt.Errorf("invalid piece color %q", p.Color)
	}
	b.put(p)
	b.history = nil
	b.refresh()
	return nil
}

// Remove clears sq and returns what stood there.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.pieces[sq]
	if !ok {
		return Piece{}, false
	}
	delete(b.pieces, sq)
	b.history = nil
	b.refresh()
	return p, true
}

// SetTurn overrides the side to move for position setup.
func (b *Board) SetTurn(c core.Color) {
	b.turn = c
	b.history = nil
}

// Clone returns an independent copy. Undo history is not carried over.
func (b *Board) Clone() *Board {
	c := &Board{
		pieces:       make(map[Square]Piece, len(b.pieces)),
		turn:         b.turn,
		castling:     b.castling,
		enPassant:    b.enPassant,
		hasEnPassant: b.hasEnPassant,
		fen:          b.fen,
	}
	for sq, p := range b.pieces {
		c.pieces[sq] = p
	}
	return c
}

func (b *Board) put(p Piece) {
	b.pieces[p.Square] = p
}

func (b *Board) relocate(from, to Square) {
	p := b.pieces[from]
	delete(b.pieces, from)
	p.Square = to
	b.pieces[to] = p
}

func (b *Board) kingSquare(c core.Color) (Square, bool) {
	for sq, p := range b.pieces {
		if p.Kind == King && p.Color == c {
			return sq, true
		}
	}
	return Square{}, false
}

func (b *Board) refresh() {
	b.fen = b.GenerateFEN()
}

// ToASCII draws the board from White's side, rank 8 on top.
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := 0; f < 8; f++ {
			if p, ok := b.pieces[Sq(f, r)]; ok {
				sb.WriteString(fmt.Sprintf("%c ", p.Letter()))
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
