package transport

import (
	"chessrules/internal/board"
	"chessrules/internal/core"
	"chessrules/internal/game"
)

// View abstracts display/output operations of an interactive front end
type View interface {
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowGameHistory(g *game.Game)
	ShowMove(result *game.MoveResult, fen string)
	ShowLegalMoves(moves []board.Move)
	ShowGameOver(state core.State)
	ShowPrompt(prompt string)
	ShowHelp()
}
