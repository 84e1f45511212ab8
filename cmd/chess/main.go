// Package main runs the interactive terminal chess game.
package main

import (
	"flag"
	"log"
	"os"

	"chessrules/internal/cli"
	"chessrules/internal/service"
	clitransport "chessrules/internal/transport/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	var (
		theme       = flag.String("theme", "off", "Board color theme (off|brown|green|gray)")
		historyFile = flag.String("history", "", "Readline history file (interactive only)")
		verbose     = flag.Bool("verbose", false, "Show the position after every move")
	)
	flag.Parse()

	svc := service.New()
	defer svc.Close()

	var input cli.LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			HistoryFile:     *historyFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			log.Fatalf("Failed to start line editor: %v", err)
		}
		defer rl.Close()
		input = rl
	} else {
		// Piped input: no line editing, no prompts in the output
		input = cli.NewScannerReader(os.Stdin, nil)
	}

	view := cli.New(input, os.Stdout)
	if err := view.SetTheme(cli.ColorTheme(*theme)); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		view.ToggleVerbose()
	}

	view.ShowWelcome()
	if err := clitransport.New(svc, view).Run(); err != nil && err != readline.ErrInterrupt {
		log.Fatalf("Input error: %v", err)
	}
}
