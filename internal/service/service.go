package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"chessrules/internal/board"
	"chessrules/internal/game"
	"chessrules/internal/notation"

	"github.com/google/uuid"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// Service owns every live game. Game state is only touched under mu.
type Service struct {
	games  map[string]*game.Game
	mu     sync.RWMutex
	waiter *WaitRegistry
}

func New() *Service {
	return &Service{
		games:  make(map[string]*game.Game),
		waiter: NewWaitRegistry(),
	}
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// NewGame registers a game under id, from fen or the standard position
// when fen is empty.
func (s *Service) NewGame(id, fen string) error {
	b := board.NewStandard()
	if fen != "" {
		var err error
		if b, err = board.FromFEN(fen); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, id)
	}
	s.games[id] = game.New(b)
	return nil
}

// View runs fn with read access to a game. fn must not mutate it.
func (s *Service) View(gameID string, fn func(*game.Game) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return fn(g)
}

// Game returns the game for exclusive use by a single-owner caller such as
// the terminal loop. Concurrent callers go through View and the mutators.
func (s *Service) Game(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g, nil
}

// MakeMove parses input against the game's position and plays it.
func (s *Service) MakeMove(gameID, input string) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	m, err := notation.Resolve(g.Board(), input)
	if err != nil {
		return nil, err
	}
	res, err := g.Apply(m)
	if err != nil {
		return nil, err
	}

	s.waiter.NotifyGame(gameID, len(g.Moves()))
	return res, nil
}

// Undo takes back count moves
func (s *Service) Undo(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if err := g.UndoMoves(count); err != nil {
		return err
	}

	s.waiter.NotifyGame(gameID, len(g.Moves()))
	return nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	s.waiter.RemoveGame(gameID)
	delete(s.games, gameID)
	return nil
}

// GameCount is reported by the health endpoint.
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Shutdown releases long-poll waiters, giving them up to timeout to return.
func (s *Service) Shutdown(timeout time.Duration) error {
	return s.waiter.Shutdown(timeout)
}

// Close drops all games
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)
	return nil
}

// RegisterWait returns a channel that is closed once the game's move count
// differs from moveCount, the game is deleted, the wait times out or ctx
// ends. It is closed immediately when the count already differs.
func (s *Service) RegisterWait(gameID string, moveCount int, ctx context.Context) (<-chan struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if len(g.Moves()) != moveCount {
		done := make(chan struct{})
		close(done)
		return done, nil
	}
	return s.waiter.RegisterWait(gameID, moveCount, ctx), nil
}
