package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/YishaiYosifov/chess2-sub007/internal/config"
	"github.com/YishaiYosifov/chess2-sub007/internal/engine"
)

// GameManager holds the live games. Every game starts from layout and is
// played under eng.
type GameManager struct {
	games  map[string]*Game
	engine *engine.Engine
	layout *config.Layout
	mu     sync.RWMutex
}

func NewGameManager(eng *engine.Engine, layout *config.Layout) *GameManager {
	return &GameManager{
		games:  make(map[string]*Game),
		engine: eng,
		layout: layout,
	}
}

func (gm *GameManager) CreateGame(gameID string) (*Game, error) {
	board, err := gm.layout.NewBoard()
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}
	game := NewGame(gameID, gm.engine, board)
	gm.games[gameID] = game
	log.Printf("created game %s", gameID)
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
