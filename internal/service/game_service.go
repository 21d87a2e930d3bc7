package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/YishaiYosifov/chess2-sub007/internal/model"
	"github.com/YishaiYosifov/chess2-sub007/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if _, err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.GameColor, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.White, err
	}
	color, err := game.AddPlayer(playerID)
	if err != nil {
		return color, err
	}
	log.Printf("game %s: player %s plays %s", gameID, playerID, color)
	return color, nil
}

func (gs *GameService) GetGameState(gameID string) (GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	return game.GetState(), nil
}

// LegalMovesFrom answers a single-square query such as "f2".
func (gs *GameService) LegalMovesFrom(gameID string, square string) ([]ws.MovePath, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	pos, ok := model.ParseSquare(square)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidSquare, square)
	}
	return game.LegalMovesFrom(pos)
}

func (gs *GameService) HandleMove(gameID string, playerID string, moveKey string) (MoveRecord, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return MoveRecord{}, err
	}
	return game.MakeMove(playerID, moveKey)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
