package core

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
	StateStalemate
)

func (s State) String() string {
	switch s {
	case StateWhiteWins:
		return "White wins by checkmate"
	case StateBlackWins:
		return "Black wins by checkmate"
	case StateStalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// Code is the short form used in API responses
func (s State) Code() string {
	switch s {
	case StateWhiteWins:
		return "white_wins"
	case StateBlackWins:
		return "black_wins"
	case StateStalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsOver reports whether no further moves can be played
func (s State) IsOver() bool {
	return s != StateOngoing
}

type Color byte

const (
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) String() string {
	if c == ColorBlack {
		return "Black"
	}
	return "White"
}

// Code is the FEN side letter, "w" or "b"
func (c Color) Code() string {
	return string([]byte{byte(c)})
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// WinnerState returns the end state in which c has delivered checkmate
func WinnerState(c Color) State {
	if c == ColorWhite {
		return StateWhiteWins
	}
	return StateBlackWins
}
