// Package notation turns typed move strings into board moves.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"chessrules/internal/board"
	"chessrules/internal/core"
)

var ErrInvalidMove = errors.New("invalid move")

// ParseMove accepts coordinate moves ("e2 e4", "e2e4", "e2-e4"),
// promotions ("e7 e8=Q", "e7e8q", "e7 e8=Kn") and castles
// ("O-O", "0-0", "O-O-O", "0-0-0"). Castles are attributed to turn.
func ParseMove(input string, turn core.Color) (board.Move, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return board.Move{}, fmt.Errorf("%w: empty input", ErrInvalidMove)
	}

	switch strings.ToUpper(s) {
	case "O-O", "0-0":
		return board.CastleMove(turn, board.Kingside), nil
	case "O-O-O", "0-0-0":
		return board.CastleMove(turn, board.Queenside), nil
	}

	s = strings.NewReplacer(" ", "", "-", "", "=", "").Replace(s)
	if len(s) < 4 {
		return board.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, input)
	}

	from, err := board.ParseSquare(s[0:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	to, err := board.ParseSquare(s[2:4])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	suffix := s[4:]
	if suffix == "" {
		return board.NormalMove(from, to), nil
	}
	kind, ok := promotionKind(suffix)
	if !ok {
		return board.Move{}, fmt.Errorf("%w: unknown promotion %q", ErrInvalidMove, suffix)
	}
	return board.PromotionMove(from, to, kind), nil
}

func promotionKind(s string) (board.Kind, bool) {
	switch strings.ToLower(s) {
	case "n", "kn":
		return board.Knight, true
	case "b":
		return board.Bishop, true
	case "r":
		return board.Rook, true
	case "q":
		return board.Queen, true
	default:
		return board.NoKind, false
	}
}

// Resolve parses input and matches it against the moves legal on b, so
// that a bare "e7e8" reaching the back rank promotes to a queen.
func Resolve(b *board.Board, input string) (board.Move, error) {
	m, err := ParseMove(input, b.Turn())
	if err != nil {
		return board.Move{}, err
	}
	if m.Type != board.MoveNormal {
		return m, nil
	}
	p, ok := b.Piece(m.From)
	if ok && p.Kind == board.Pawn && (m.To.Rank == 0 || m.To.Rank == 7) {
		return board.PromotionMove(m.From, m.To, board.Queen), nil
	}
	return m, nil
}
