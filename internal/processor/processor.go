package processor

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"unicode"

	"chessrules/internal/board"
	"chessrules/internal/core"
	"chessrules/internal/game"
	"chessrules/internal/notation"
	"chessrules/internal/service"
)

// FEN screening regex: placement, then optional side, castling, en passant and counters
var fenPattern = regexp.MustCompile(`^[rnbqkpRNBQKP1-8/]+( [wb]( [KQkq-]+( [a-h1-8-]+( \d+ \d+)?)?)?)?$`)

// Processor translates commands into service calls and API responses
type Processor struct {
	svc *service.Service
}

func New(svc *service.Service) *Processor {
	return &Processor{svc: svc}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdUndoMove:
		return p.handleUndoMove(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	case CmdLegalMoves:
		return p.handleLegalMoves(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

// isFENSafe rejects control characters and anything outside the FEN alphabet
func (p *Processor) isFENSafe(fen string) bool {
	for _, r := range fen {
		if unicode.IsControl(r) {
			return false
		}
	}
	return fenPattern.MatchString(fen)
}

func (p *Processor) isMoveSafe(move string) bool {
	for _, r := range move {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	if args.FEN != "" && !p.isFENSafe(args.FEN) {
		return p.errorResponse("invalid FEN format or characters", core.ErrInvalidFEN)
	}

	gameID := p.svc.GenerateGameID()
	if err := p.svc.NewGame(gameID, args.FEN); err != nil {
		return p.serviceError(err)
	}
	return p.gameResponse(gameID)
}

func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	return p.gameResponse(cmd.GameID)
}

func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}
	if !p.isMoveSafe(args.Move) {
		return p.errorResponse("invalid move format", core.ErrInvalidMove)
	}

	if _, err := p.svc.MakeMove(cmd.GameID, args.Move); err != nil {
		return p.serviceError(err)
	}
	return p.gameResponse(cmd.GameID)
}

func (p *Processor) handleUndoMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.UndoRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	if err := p.svc.Undo(cmd.GameID, args.Count); err != nil {
		return p.serviceError(err)
	}
	return p.gameResponse(cmd.GameID)
}

func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true}
}

func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	var resp core.BoardResponse
	err := p.svc.View(cmd.GameID, func(g *game.Game) error {
		resp = core.BoardResponse{
			FEN:   g.CurrentFEN(),
			Board: g.Board().ToASCII(),
		}
		return nil
	})
	if err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true, Data: resp}
}

// handleLegalMoves lists the side to move's legal moves, or those of the
// piece on the requested square.
func (p *Processor) handleLegalMoves(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.LegalMovesRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	var from board.Square
	if args.Square != "" {
		sq, err := board.ParseSquare(args.Square)
		if err != nil {
			return p.errorResponse(err.Error(), core.ErrInvalidSquare)
		}
		from = sq
	}

	resp := core.LegalMovesResponse{Square: args.Square, Moves: []string{}}
	err := p.svc.View(cmd.GameID, func(g *game.Game) error {
		b := g.Board()
		var moves []board.Move
		if args.Square != "" {
			moves = b.LegalMovesFrom(from)
		} else {
			moves = b.LegalMovesFor(b.Turn())
		}
		for _, m := range moves {
			resp.Moves = append(resp.Moves, m.String())
		}
		return nil
	})
	if err != nil {
		return p.serviceError(err)
	}
	sort.Strings(resp.Moves)
	return ProcessorResponse{Success: true, Data: resp}
}

// gameResponse reads the game under the service lock and wraps it
func (p *Processor) gameResponse(gameID string) ProcessorResponse {
	var resp core.GameResponse
	err := p.svc.View(gameID, func(g *game.Game) error {
		resp = p.buildGameResponse(gameID, g)
		return nil
	})
	if err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true, Data: resp}
}

// buildGameResponse constructs standard game response
func (p *Processor) buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	turn := g.NextTurn()
	resp := core.GameResponse{
		GameID: gameID,
		FEN:    g.CurrentFEN(),
		Turn:   turn.Code(),
		State:  g.State().Code(),
		Check:  g.Board().IsInCheck(turn),
		Moves:  g.Moves(),
	}

	if result := g.LastResult(); result != nil {
		resp.LastMove = &core.MoveInfo{
			Move:        result.Move.String(),
			PlayerColor: result.Player.Code(),
		}
	}

	return resp
}

// serviceError maps domain errors onto API error codes
func (p *Processor) serviceError(err error) ProcessorResponse {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return p.errorResponse("game not found", core.ErrGameNotFound)
	case errors.Is(err, game.ErrGameOver):
		return p.errorResponse(err.Error(), core.ErrGameOver)
	case errors.Is(err, game.ErrIllegalMove):
		return p.errorResponse(err.Error(), core.ErrIllegalMove)
	case errors.Is(err, notation.ErrInvalidMove):
		return p.errorResponse(err.Error(), core.ErrInvalidMove)
	case errors.Is(err, game.ErrUndo):
		return p.errorResponse(err.Error(), core.ErrInvalidRequest)
	case errors.Is(err, board.ErrInvalidFEN):
		return p.errorResponse(err.Error(), core.ErrInvalidFEN)
	default:
		return p.errorResponse(fmt.Sprintf("internal error: %v", err), core.ErrInternalError)
	}
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error: message,
			Code:  code,
		},
	}
}
