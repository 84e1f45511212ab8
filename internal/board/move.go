package board

import (
	"unicode"

	"chessrules/internal/core"
)

type MoveType uint8

const (
	MoveNormal MoveType = iota
	MovePromotion
	MoveCastle
)

type CastleSide uint8

const (
	Kingside CastleSide = iota
	Queenside
)

func (s CastleSide) String() string {
	if s == Queenside {
		return "queenside"
	}
	return "kingside"
}

// Move is a tagged union over normal, promotion and castle moves.
// Build moves with NormalMove, PromotionMove and CastleMove so that
// unused fields stay zero and == compares structurally.
type Move struct {
	Type      MoveType
	From      Square
	To        Square
	Promotion Kind
	Color     core.Color
	Side      CastleSide
}

func NormalMove(from, to Square) Move {
	return Move{Type: MoveNormal, From: from, To: to}
}

func PromotionMove(from, to Square, promotion Kind) Move {
	return Move{Type: MovePromotion, From: from, To: to, Promotion: promotion}
}

func CastleMove(color core.Color, side CastleSide) Move {
	return Move{Type: MoveCastle, Color: color, Side: side}
}

// String renders "e2e4", "e7e8q", "O-O" or "O-O-O".
func (m Move) String() string {
	switch m.Type {
	case MoveCastle:
		if m.Side == Queenside {
			return "O-O-O"
		}
		return "O-O"
	case MovePromotion:
		s := m.From.String() + m.To.String()
		if l := m.Promotion.Letter(); l != 0 {
			s += string(unicode.ToLower(rune(l)))
		}
		return s
	default:
		return m.From.String() + m.To.String()
	}
}

// UCI renders the move in long algebraic form, castles as king moves ("e1g1").
func (m Move) UCI() string {
	if m.Type == MoveCastle {
		path := castleGeometry(m.Color, m.Side)
		return path.kingFrom.String() + path.kingTo.String()
	}
	return m.String()
}

// castlePath describes the fixed squares involved in one castle.
type castlePath struct {
	kingFrom, kingTransit, kingTo Square
	rookFrom, rookTo              Square
	between                       []Square
}

func castleGeometry(color core.Color, side CastleSide) castlePath {
	r := backRank(color)
	if side == Kingside {
		return castlePath{
			kingFrom:    Sq(4, r),
			kingTransit: Sq(5, r),
			kingTo:      Sq(6, r),
			rookFrom:    Sq(7, r),
			rookTo:      Sq(5, r),
			between:     []Square{Sq(5, r), Sq(6, r)},
		}
	}
	return castlePath{
		kingFrom:    Sq(4, r),
		kingTransit: Sq(3, r),
		kingTo:      Sq(2, r),
		rookFrom:    Sq(0, r),
		rookTo:      Sq(3, r),
		between:     []Square{Sq(3, r), Sq(2, r), Sq(1, r)},
	}
}

// origin is the square whose piece performs m.
func (m Move) origin() Square {
	if m.Type == MoveCastle {
		return castleGeometry(m.Color, m.Side).kingFrom
	}
	return m.From
}
