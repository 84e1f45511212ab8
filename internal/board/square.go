package board

import (
	"errors"
	"fmt"
)

var ErrInvalidSquare = errors.New("invalid square")

// Square addresses one board cell: a1 is {0, 0}, h8 is {7, 7}.
type Square struct {
	File int
	Rank int
}

// Sq builds a square without range checks; use Valid or ParseSquare for untrusted input.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare converts algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{File: int(file - 'a'), Rank: int(rank - '1')}, nil
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}

func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%c", 'a'+s.File, '1'+s.Rank)
}

// Increment moves n steps in direction d. It reports false when any
// coordinate of the result would leave the board.
func (s Square) Increment(d Direction, n int) (Square, bool) {
	delta := directionDeltas[d]
	next := Square{File: s.File + delta.file*n, Rank: s.Rank + delta.rank*n}
	if !s.Valid() || !next.Valid() {
		return Square{}, false
	}
	return next, true
}

// Direction is a compass step or a knight leap. North points toward rank 8.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	NorthNorthEast
	EastNorthEast
	EastSouthEast
	SouthSouthEast
	SouthSouthWest
	WestSouthWest
	WestNorthWest
	NorthNorthWest
)

var directionDeltas = [...]struct{ file, rank int }{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},

	NorthNorthEast: {1, 2},
	EastNorthEast:  {2, 1},
	EastSouthEast:  {2, -1},
	SouthSouthEast: {1, -2},
	SouthSouthWest: {-1, -2},
	WestSouthWest:  {-2, -1},
	WestNorthWest:  {-2, 1},
	NorthNorthWest: {-1, 2},
}

var (
	Orthogonals = []Direction{North, East, South, West}
	Diagonals   = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	Compass     = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	KnightLeaps = []Direction{
		NorthNorthEast, EastNorthEast, EastSouthEast, SouthSouthEast,
		SouthSouthWest, WestSouthWest, WestNorthWest, NorthNorthWest,
	}
)
