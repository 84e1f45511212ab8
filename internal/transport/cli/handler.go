package cli

import (
	"fmt"
	"strconv"
	"strings"

	"chessrules/internal/board"
	"chessrules/internal/cli"
	"chessrules/internal/game"
	"chessrules/internal/service"
	"chessrules/internal/transport"
)

// Terminal is a View that also reads commands and owns display settings.
type Terminal interface {
	transport.View
	GetCommand() (*cli.Command, error)
	SetTheme(theme cli.ColorTheme) error
	ToggleVerbose() bool
}

var _ Terminal = (*cli.CLI)(nil)

type CLIHandler struct {
	svc    *service.Service
	view   Terminal
	gameID string
}

func New(svc *service.Service, view Terminal) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Run is the command loop; it returns on quit or end of input.
func (h *CLIHandler) Run() error {
	for {
		h.view.ShowPrompt(h.getPrompt())

		cmd, err := h.view.GetCommand()
		if err != nil {
			return err
		}

		if !h.ProcessCommand(cmd) {
			return nil
		}
	}
}

func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		if g, err := h.svc.Game(h.gameID); err == nil && !g.State().IsOver() {
			prompt = fmt.Sprintf("[%s]> ", g.NextTurn().Code())
		}
	}
	return prompt
}

// ProcessCommand handles one command and returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		h.startGame("")

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <FEN string>")
			return true
		}
		h.startGame(strings.Join(cmd.Args, " "))

	case cli.CmdMove:
		g, ok := h.activeGame()
		if !ok {
			return true
		}
		result, err := h.svc.MakeMove(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMove(result, g.CurrentFEN())
		h.view.DisplayBoard(g.Board())
		if result.GameState.IsOver() {
			h.view.ShowGameOver(result.GameState)
		}

	case cli.CmdUndo:
		g, ok := h.activeGame()
		if !ok {
			return true
		}

		count := 1
		if len(cmd.Args) > 0 {
			n, err := strconv.Atoi(cmd.Args[0])
			if err != nil || n < 1 {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
			count = n
		}

		if err := h.svc.Undo(h.gameID, count); err != nil {
			h.view.ShowError(err)
			return true
		}
		if count == 1 {
			h.view.ShowMessage("Move undone")
		} else {
			h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
		}
		h.view.DisplayBoard(g.Board())

	case cli.CmdMoves:
		g, ok := h.activeGame()
		if !ok {
			return true
		}
		b := g.Board()
		if len(cmd.Args) == 0 {
			h.view.ShowLegalMoves(b.LegalMovesFor(b.Turn()))
			return true
		}
		sq, err := board.ParseSquare(cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowLegalMoves(b.LegalMovesFrom(sq))

	case cli.CmdFEN:
		if g, ok := h.activeGame(); ok {
			h.view.ShowMessage(g.CurrentFEN())
		}

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
		if g, err := h.svc.Game(h.gameID); err == nil {
			h.view.DisplayBoard(g.Board())
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if g, ok := h.activeGame(); ok {
			h.view.ShowGameHistory(g)
		}

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) activeGame() (*game.Game, bool) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
		return nil, false
	}
	g, err := h.svc.Game(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		h.gameID = ""
		return nil, false
	}
	return g, true
}

// startGame replaces the current game with one from fen, or the initial
// position when fen is empty.
func (h *CLIHandler) startGame(fen string) {
	if h.gameID != "" {
		_ = h.svc.DeleteGame(h.gameID)
		h.gameID = ""
	}

	id := h.svc.GenerateGameID()
	if err := h.svc.NewGame(id, fen); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %w", err))
		return
	}
	h.gameID = id

	g, _ := h.svc.Game(id)
	h.view.ShowMessage("Game started.")
	h.view.DisplayBoard(g.Board())

	if state := g.State(); state.IsOver() {
		h.view.ShowGameOver(state)
		return
	}
	if g.Board().IsInCheck(g.NextTurn()) {
		h.view.ShowMessage(fmt.Sprintf("%s is in check", g.NextTurn()))
	}
}
