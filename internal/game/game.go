package game

import (
	"errors"
	"fmt"

	"chessrules/internal/board"
	"chessrules/internal/core"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrUndo        = errors.New("cannot undo")
)

type Snapshot struct {
	FEN          string     // Position at this point, with side, castling and en passant
	PreviousMove string     // Move that created this position (empty for initial)
	NextTurn     core.Color // Whose turn it is at this position
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      board.Move
	Player    core.Color
	GameState core.State
	Check     bool
}

// Game is one live board plus the history of positions it went through.
type Game struct {
	board      *board.Board
	snapshots  []Snapshot
	state      core.State
	lastResult *MoveResult
}

// New starts a game from b. The game takes ownership of b.
func New(b *board.Board) *Game {
	g := &Game{
		board: b,
		snapshots: []Snapshot{
			{
				FEN:      b.PositionFEN(),
				NextTurn: b.Turn(),
			},
		},
	}
	g.state = g.evaluate()
	return g
}

// NewStandard starts a game from the initial position.
func NewStandard() *Game {
	return New(board.NewStandard())
}

// Apply plays m for the side to move.
func (g *Game) Apply(m board.Move) (*MoveResult, error) {
	if g.state.IsOver() {
		return nil, ErrGameOver
	}
	player := g.board.Turn()
	if !g.board.MakeMove(m) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	// MakeMove may normalize the promotion kind; history keeps what was played.
	played := m
	if m.Type == board.MovePromotion && !isPromotionKind(m.Promotion) {
		played.Promotion = board.Queen
	}

	g.snapshots = append(g.snapshots, Snapshot{
		FEN:          g.board.PositionFEN(),
		PreviousMove: played.String(),
		NextTurn:     g.board.Turn(),
	})
	g.state = g.evaluate()
	g.lastResult = &MoveResult{
		Move:      played,
		Player:    player,
		GameState: g.state,
		Check:     g.board.IsInCheck(g.board.Turn()),
	}
	return g.lastResult, nil
}

func isPromotionKind(k board.Kind) bool {
	for _, p := range board.PromotionKinds {
		if p == k {
			return true
		}
	}
	return false
}

// evaluate derives the end state for the side to move. Checkmate is tested
// before the no-moves case so a mate is never reported as stalemate.
func (g *Game) evaluate() core.State {
	turn := g.board.Turn()
	if g.board.InCheckmate(turn) {
		return core.WinnerState(core.OppositeColor(turn))
	}
	if g.board.InStalemate(turn) {
		return core.StateStalemate
	}
	return core.StateOngoing
}

func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: invalid undo count: %d", ErrUndo, count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("%w: cannot undo %d moves: only %d moves available", ErrUndo, count, availableMoves)
	}

	for i := 0; i < count; i++ {
		if _, ok := g.board.UndoMove(); !ok {
			return fmt.Errorf("%w: board history exhausted", ErrUndo)
		}
	}
	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.state = g.evaluate()
	g.lastResult = nil
	return nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

func (g *Game) Snapshots() []Snapshot {
	out := make([]Snapshot, len(g.snapshots))
	copy(out, g.snapshots)
	return out
}

func (g *Game) CurrentFEN() string {
	return g.CurrentSnapshot().FEN
}

func (g *Game) NextTurn() core.Color {
	return g.CurrentSnapshot().NextTurn
}

func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) InitialFEN() string {
	return g.snapshots[0].FEN
}
