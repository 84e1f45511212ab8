package cli

import (
	"bytes"
	"strings"
	"testing"

	"chessrules/internal/cli"
	"chessrules/internal/service"
	"chessrules/internal/testutil"
)

// runScript feeds script to a fresh handler and returns everything it printed.
func runScript(t *testing.T, script string) (string, *service.Service) {
	t.Helper()
	var out bytes.Buffer
	svc := service.New()
	view := cli.New(cli.NewScannerReader(strings.NewReader(script), &out), &out)
	testutil.AssertNoError(t, New(svc, view).Run())
	return out.String(), svc
}

func TestSession(t *testing.T) {
	out, svc := runScript(t, strings.Join([]string{
		"moves",
		"new",
		"e2 e4",
		"moves g8",
		"fen",
		"undo",
		"fen",
		"quit",
		"e2e4",
	}, "\n"))

	testutil.AssertContains(t, out, "No active game")
	testutil.AssertContains(t, out, "Game started.")
	testutil.AssertContains(t, out, "White plays e2e4")
	testutil.AssertContains(t, out, "[b]> ")
	testutil.AssertContains(t, out, "2 legal:")
	testutil.AssertContains(t, out, "g8f6")
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3")
	testutil.AssertContains(t, out, "Move undone")
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")

	if strings.Count(out, "White plays e2e4") != 1 {
		t.Error("input after quit was processed")
	}
	if svc.GameCount() != 1 {
		t.Errorf("GameCount = %d, want 1", svc.GameCount())
	}
}

func TestRejectedInput(t *testing.T) {
	out, _ := runScript(t, strings.Join([]string{
		"new",
		"e2e5",
		"hello",
		"undo",
		"undo x",
		"moves z9",
		"color purple",
		"resume",
	}, "\n"))

	testutil.AssertContains(t, out, "Error: illegal move")
	testutil.AssertContains(t, out, "Error: invalid move")
	testutil.AssertContains(t, out, "Error: cannot undo")
	testutil.AssertContains(t, out, "Invalid undo count")
	testutil.AssertContains(t, out, "Error: invalid square")
	testutil.AssertContains(t, out, "invalid theme: purple")
	testutil.AssertContains(t, out, "Usage: resume <FEN string>")
}

func TestCheckmate(t *testing.T) {
	out, _ := runScript(t, strings.Join([]string{
		"new",
		"f2f3", "e7e5", "g2g4", "d8h4",
		"a2a3",
		"history",
	}, "\n"))

	testutil.AssertContains(t, out, "Game Over: Black wins by checkmate")
	testutil.AssertContains(t, out, "Error: game is over")
	testutil.AssertContains(t, out, "1. f2f3 | e7e5")
	testutil.AssertContains(t, out, "2. g2g4 | d8h4")
}

func TestResume(t *testing.T) {
	out, svc := runScript(t, strings.Join([]string{
		"resume 4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"O-O",
		"fen",
		"resume 4k3/4Q3/4K3/8/8/8/8/8 b",
		"resume not a fen",
	}, "\n"))

	testutil.AssertContains(t, out, "White plays O-O")
	testutil.AssertContains(t, out, "4k3/8/8/8/8/8/8/5RK1 b - -")
	testutil.AssertContains(t, out, "Game Over: White wins by checkmate")
	testutil.AssertContains(t, out, "could not start the game")
	if svc.GameCount() != 0 {
		t.Errorf("GameCount = %d, want 0 after a failed resume", svc.GameCount())
	}
}
