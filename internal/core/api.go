package core

// Request types

type CreateGameRequest struct {
	FEN string `json:"fen,omitempty" validate:"omitempty,max=100"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=3,max=8"` // "e2e4", "e2 e4", "e7 e8=Q", "O-O"
}

type UndoRequest struct {
	Count int `json:"count" validate:"required,min=1,max=300"`
}

type LegalMovesRequest struct {
	Square string `query:"square" validate:"omitempty,len=2"`
}

// Response types

type GameResponse struct {
	GameID   string    `json:"gameId"`
	FEN      string    `json:"fen"`
	Turn     string    `json:"turn"`  // "w" or "b"
	State    string    `json:"state"` // "ongoing", "white_wins", etc
	Check    bool      `json:"check"`
	Moves    []string  `json:"moves"`
	LastMove *MoveInfo `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	Move        string `json:"move"`
	PlayerColor string `json:"playerColor"` // "w" or "b"
}

type BoardResponse struct {
	FEN   string `json:"fen"`
	Board string `json:"board"` // ASCII representation
}

type LegalMovesResponse struct {
	Square string   `json:"square,omitempty"`
	Moves  []string `json:"moves"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
