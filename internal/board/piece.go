package board

import (
	"unicode"

	"chessrules/internal/core"
)

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds in the order promotion variants are generated.
var PromotionKinds = []Kind{Knight, Bishop, Rook, Queen}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Value is the conventional material value. The king's 0 carries no meaning.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// Letter returns the upper-case FEN letter, or 0 for NoKind.
func (k Kind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return 0
	}
}

func (k Kind) isPromotion() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// KindFromLetter accepts either case.
func KindFromLetter(c byte) (Kind, bool) {
	switch unicode.ToUpper(rune(c)) {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return NoKind, false
	}
}

// Piece records its own square; the board keeps Square equal to the map key.
type Piece struct {
	Kind   Kind
	Color  core.Color
	Square Square
}

// Letter is the FEN letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Color == core.ColorBlack {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// pawnForward is the compass step a pawn of color c advances along.
func pawnForward(c core.Color) Direction {
	if c == core.ColorWhite {
		return North
	}
	return South
}

func pawnStartRank(c core.Color) int {
	if c == core.ColorWhite {
		return 1
	}
	return 6
}

func backRank(c core.Color) int {
	if c == core.ColorWhite {
		return 0
	}
	return 7
}
