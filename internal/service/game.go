package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/YishaiYosifov/chess2-sub007/internal/engine"
	"github.com/YishaiYosifov/chess2-sub007/internal/model"
	"github.com/YishaiYosifov/chess2-sub007/internal/notation"
	"github.com/YishaiYosifov/chess2-sub007/internal/ws"
)

// MoveRecord is one played move as clients see it.
type MoveRecord struct {
	Notation string      `json:"notation"`
	Move     ws.MovePath `json:"move"`
}

type PlacedPiece struct {
	Idx    ws.SquareIndex `json:"idx"`
	Square string         `json:"square"`
	Piece  model.Piece    `json:"piece"`
}

type GameState struct {
	ID          string               `json:"id"`
	Ply         int                  `json:"ply"`
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	Pieces      []PlacedPiece        `json:"pieces"`
	ToMove      model.GameColor      `json:"toMove"`
	MoveHistory []MoveRecord         `json:"moveHistory"`
	LegalMoves  ws.LegalMovesPayload `json:"legalMoves"`
	Players     model.Players        `json:"players"`
}

// The Game struct owns a single game's board, its turn order and its
// observers. The board is only touched under mu. broadcastMu orders state
// broadcasts and is never taken while mu is held.
type Game struct {
	ID          string
	mu          sync.Mutex
	broadcastMu sync.Mutex
	engine      *engine.Engine
	board       *model.Board
	toMove      model.GameColor
	legalMoves  *engine.LegalMoveSet
	players     model.Players
	history     []MoveRecord
	connections *GameConnections // Connections just for this game
}

// NewGame takes ownership of board. White moves first.
func NewGame(id string, eng *engine.Engine, board *model.Board) *Game {
	g := &Game{
		ID:          id,
		engine:      eng,
		board:       board,
		toMove:      model.White,
		connections: NewGameConnections(),
	}
	g.legalMoves = eng.CalculateAllLegalMoves(board, g.toMove)
	return g
}

func (g *Game) AddPlayer(playerID string) (model.GameColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	color, ok := g.players.Seat(playerID)
	if !ok {
		return color, ErrGameFull
	}
	return color, nil
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() GameState {
	width := g.board.Width()
	state := GameState{
		ID:          g.ID,
		Ply:         len(g.history),
		Width:       width,
		Height:      g.board.Height(),
		Pieces:      make([]PlacedPiece, 0),
		ToMove:      g.toMove,
		MoveHistory: append(make([]MoveRecord, 0, len(g.history)), g.history...),
		LegalMoves: ws.LegalMovesPayload{
			Moves:          ws.EncodeMoves(g.legalMoves.Moves(), width),
			HasForcedMoves: g.legalMoves.HasForcedMoves(),
		},
		Players: g.players,
	}
	for pos, piece := range g.board.Pieces() {
		state.Pieces = append(state.Pieces, PlacedPiece{
			Idx:    ws.IndexOf(pos, width),
			Square: pos.Square(),
			Piece:  piece,
		})
	}
	return state
}

// LegalMovesFrom lists the legal moves of the side to move that start on
// pos.
func (g *Game) LegalMovesFrom(pos model.Position) ([]ws.MovePath, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.board.IsWithinBoundaries(pos) {
		return nil, fmt.Errorf("%w: %s is off the board", ErrInvalidSquare, pos.Square())
	}
	return ws.EncodeMoves(g.legalMoves.From(pos), g.board.Width()), nil
}

// MakeMove plays the legal move named by moveKey for playerID and
// broadcasts the new state.
func (g *Game) MakeMove(playerID, moveKey string) (MoveRecord, error) {
	record, err := g.makeMove(playerID, moveKey)
	if err != nil {
		return MoveRecord{}, err
	}
	g.broadcastState()
	return record, nil
}

func (g *Game) makeMove(playerID, moveKey string) (MoveRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	color, ok := g.players.ColorOf(playerID)
	if !ok {
		return MoveRecord{}, ErrNotInGame
	}
	if color != g.toMove {
		return MoveRecord{}, ErrNotYourTurn
	}
	move, ok := g.legalMoves.Get(moveKey)
	if !ok {
		return MoveRecord{}, fmt.Errorf("%w: %s", ErrIllegalMove, moveKey)
	}

	record := MoveRecord{
		Notation: notation.Notate(move, g.legalMoves.Moves()),
		Move:     ws.EncodeMove(move, g.board.Width()),
	}
	if err := g.board.ApplyMove(move); err != nil {
		return MoveRecord{}, fmt.Errorf("game %s: %w", g.ID, err)
	}
	g.history = append(g.history, record)
	g.toMove = g.toMove.Opposite()
	g.legalMoves = g.engine.CalculateAllLegalMoves(g.board, g.toMove)
	log.Printf("game %s: %s played %s", g.ID, color, record.Notation)

	return record, nil
}

// RegisterConnection accepts seated players, and spectators while a seat
// is free.
func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	g.mu.Lock()
	_, seated := g.players.ColorOf(playerID)
	authorized := seated || g.players.HasFreeSeat()
	g.mu.Unlock()

	if !authorized {
		return ErrGameFull
	}
	if !g.connections.add(playerID, conn) {
		// Not really an error, just rejecting duplicate connection
		return nil
	}
	log.Printf("game %s: registered connection for player %s", g.ID, playerID)
	g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.remove(playerID)
	log.Printf("game %s: unregistered connection for player %s", g.ID, playerID)
}

// broadcastState snapshots inside broadcastMu, so a connection never
// receives an older ply after a newer one.
func (g *Game) broadcastState() {
	g.broadcastMu.Lock()
	defer g.broadcastMu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, g.GetState())
	if err != nil {
		log.Printf("game %s: %v", g.ID, err)
		return
	}
	g.connections.broadcast(msg)
}
