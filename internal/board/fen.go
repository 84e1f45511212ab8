package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chessrules/internal/core"
)

const (
	StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	StartingFEN       = StartingPlacement + " w KQkq - 0 1"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// FromFEN parses a FEN string. Only the placement field is required; when
// the side, castling and en-passant fields are present they are honoured,
// otherwise the board defaults to White to move, all castling rights and no
// en-passant target. Move counters are accepted and ignored.
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("%w: expected at most 6 fields, got %d", ErrInvalidFEN, len(parts))
	}

	b := New()

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, ok := KindFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: too many pieces in rank %d", ErrInvalidFEN, rank+1)
			}
			color := core.ColorWhite
			if ch >= 'a' && ch <= 'z' {
				color = core.ColorBlack
			}
			b.put(Piece{Kind: kind, Color: color, Square: Sq(file, rank)})
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}

	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			b.turn = core.ColorWhite
		case "b":
			b.turn = core.ColorBlack
		default:
			return nil, fmt.Errorf("%w: turn must be 'w' or 'b'", ErrInvalidFEN)
		}
	}

	if len(parts) > 2 {
		rights, err := parseCastling(parts[2])
		if err != nil {
			return nil, err
		}
		b.castling = rights
	}

	if len(parts) > 3 && parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil || (sq.Rank != 2 && sq.Rank != 5) {
			return nil, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, parts[3])
		}
		b.enPassant, b.hasEnPassant = sq, true
	}

	for _, counter := range parts[min(len(parts), 4):] {
		if n, err := strconv.Atoi(counter); err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad move counter %q", ErrInvalidFEN, counter)
		}
	}

	b.refresh()
	return b, nil
}

func parseCastling(s string) (CastlingRights, error) {
	var r CastlingRights
	if s == "-" {
		return r, nil
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			r.WhiteKingside = true
		case 'Q':
			r.WhiteQueenside = true
		case 'k':
			r.BlackKingside = true
		case 'q':
			r.BlackQueenside = true
		default:
			return r, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, s)
		}
	}
	return r, nil
}

// GenerateFEN encodes the piece-placement field, rank 8 first.
func (b *Board) GenerateFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p, ok := b.pieces[Sq(file, rank)]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// PositionFEN adds side to move, castling and en-passant fields to the
// placement. Two boards with equal PositionFEN are the same position.
func (b *Board) PositionFEN() string {
	ep := "-"
	if b.hasEnPassant {
		ep = b.enPassant.String()
	}
	return fmt.Sprintf("%s %c %s %s", b.fen, b.turn, b.castling, ep)
}
