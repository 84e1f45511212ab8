package processor

import (
	"testing"

	"chessrules/internal/core"
	"chessrules/internal/service"
	"chessrules/internal/testutil"
)

func createGame(t *testing.T, p *Processor, fen string) core.GameResponse {
	t.Helper()
	resp := p.Execute(NewCreateGameCommand(core.CreateGameRequest{FEN: fen}))
	if !resp.Success {
		t.Fatalf("create game failed: %+v", resp.Error)
	}
	return resp.Data.(core.GameResponse)
}

func TestCreateGame(t *testing.T) {
	p := New(service.New())
	g := createGame(t, p, "")

	if g.Turn != "w" || g.State != "ongoing" || g.Check {
		t.Errorf("new game = %+v", g)
	}
	if g.FEN != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -" {
		t.Errorf("FEN = %q", g.FEN)
	}
	if len(g.Moves) != 0 {
		t.Errorf("Moves = %v, want none", g.Moves)
	}
}

func TestCreateGameFEN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantCode string
	}{
		{"placement only", "4k3/8/8/8/8/8/8/4K3", ""},
		{"full", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", ""},
		{"control character", "4k3/8/8/8/8/8/8/4K3\n", core.ErrInvalidFEN},
		{"garbage", "hello world", core.ErrInvalidFEN},
		{"passes pattern fails parse", "4k3/8/8/8/8/8/8/4K4", core.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(service.New())
			resp := p.Execute(NewCreateGameCommand(core.CreateGameRequest{FEN: tt.fen}))
			if tt.wantCode == "" {
				if !resp.Success {
					t.Fatalf("create failed: %+v", resp.Error)
				}
				return
			}
			if resp.Success || resp.Error.Code != tt.wantCode {
				t.Errorf("response = %+v, want code %s", resp, tt.wantCode)
			}
		})
	}
}

func TestCreateGameAlreadyMated(t *testing.T) {
	p := New(service.New())
	g := createGame(t, p, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if g.State != "black_wins" || !g.Check {
		t.Errorf("game = %+v, want black_wins in check", g)
	}
}

func TestMakeMove(t *testing.T) {
	p := New(service.New())
	id := createGame(t, p, "").GameID

	resp := p.Execute(NewMakeMoveCommand(id, core.MoveRequest{Move: "e2 e4"}))
	if !resp.Success {
		t.Fatalf("move failed: %+v", resp.Error)
	}
	g := resp.Data.(core.GameResponse)
	testutil.AssertEqual(t, g.Moves, []string{"e2e4"})
	testutil.AssertEqual(t, g.LastMove, &core.MoveInfo{Move: "e2e4", PlayerColor: "w"})
	if g.Turn != "b" {
		t.Errorf("Turn = %q, want b", g.Turn)
	}

	tests := []struct {
		name     string
		gameID   string
		move     string
		wantCode string
	}{
		{"illegal", id, "e4 e6", core.ErrIllegalMove},
		{"malformed", id, "e2-e9", core.ErrInvalidMove},
		{"control", id, "e7\te5", core.ErrInvalidMove},
		{"missing game", "nope", "e7e5", core.ErrGameNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := p.Execute(NewMakeMoveCommand(tt.gameID, core.MoveRequest{Move: tt.move}))
			if resp.Success || resp.Error.Code != tt.wantCode {
				t.Errorf("response = %+v, want code %s", resp, tt.wantCode)
			}
		})
	}
}

func TestMoveAfterMate(t *testing.T) {
	p := New(service.New())
	id := createGame(t, p, "").GameID
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if resp := p.Execute(NewMakeMoveCommand(id, core.MoveRequest{Move: m})); !resp.Success {
			t.Fatalf("move %s failed: %+v", m, resp.Error)
		}
	}

	resp := p.Execute(NewMakeMoveCommand(id, core.MoveRequest{Move: "a2a3"}))
	if resp.Success || resp.Error.Code != core.ErrGameOver {
		t.Errorf("response = %+v, want GAME_OVER", resp)
	}
}

func TestUndoMove(t *testing.T) {
	p := New(service.New())
	id := createGame(t, p, "").GameID
	p.Execute(NewMakeMoveCommand(id, core.MoveRequest{Move: "e2e4"}))

	resp := p.Execute(NewUndoMoveCommand(id, core.UndoRequest{Count: 1}))
	if !resp.Success {
		t.Fatalf("undo failed: %+v", resp.Error)
	}
	if g := resp.Data.(core.GameResponse); len(g.Moves) != 0 || g.LastMove != nil {
		t.Errorf("after undo = %+v", g)
	}

	resp = p.Execute(NewUndoMoveCommand(id, core.UndoRequest{Count: 1}))
	if resp.Success || resp.Error.Code != core.ErrInvalidRequest {
		t.Errorf("undo past start = %+v, want INVALID_REQUEST", resp)
	}
}

func TestGetBoardAndDelete(t *testing.T) {
	p := New(service.New())
	id := createGame(t, p, "")

	resp := p.Execute(NewGetBoardCommand(id.GameID))
	if !resp.Success {
		t.Fatalf("board failed: %+v", resp.Error)
	}
	testutil.AssertContains(t, resp.Data.(core.BoardResponse).Board, "1 R N B Q K B N R  1")

	if resp := p.Execute(NewDeleteGameCommand(id.GameID)); !resp.Success {
		t.Fatalf("delete failed: %+v", resp.Error)
	}
	resp = p.Execute(NewGetGameCommand(id.GameID))
	if resp.Success || resp.Error.Code != core.ErrGameNotFound {
		t.Errorf("get after delete = %+v, want GAME_NOT_FOUND", resp)
	}
}

func TestLegalMoves(t *testing.T) {
	p := New(service.New())
	id := createGame(t, p, "").GameID

	resp := p.Execute(NewLegalMovesCommand(id, core.LegalMovesRequest{}))
	if !resp.Success {
		t.Fatalf("legal moves failed: %+v", resp.Error)
	}
	if got := len(resp.Data.(core.LegalMovesResponse).Moves); got != 20 {
		t.Errorf("len(Moves) = %d, want 20", got)
	}

	resp = p.Execute(NewLegalMovesCommand(id, core.LegalMovesRequest{Square: "g1"}))
	testutil.AssertEqual(t, resp.Data.(core.LegalMovesResponse).Moves, []string{"g1f3", "g1h3"})

	resp = p.Execute(NewLegalMovesCommand(id, core.LegalMovesRequest{Square: "e5"}))
	testutil.AssertEqual(t, resp.Data.(core.LegalMovesResponse).Moves, []string{})

	resp = p.Execute(NewLegalMovesCommand(id, core.LegalMovesRequest{Square: "z9"}))
	if resp.Success || resp.Error.Code != core.ErrInvalidSquare {
		t.Errorf("bad square = %+v, want INVALID_SQUARE", resp)
	}
}

func TestUnknownCommand(t *testing.T) {
	p := New(service.New())
	resp := p.Execute(Command{Type: CommandType(99)})
	if resp.Success || resp.Error.Code != core.ErrInvalidRequest {
		t.Errorf("response = %+v, want INVALID_REQUEST", resp)
	}
}
