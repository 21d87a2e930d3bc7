package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/YishaiYosifov/chess2-sub007/internal/middleware"
	"github.com/YishaiYosifov/chess2-sub007/internal/service"
	"github.com/YishaiYosifov/chess2-sub007/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals(middleware.GameIDLocal).(string)
	playerID, _ := c.Locals(middleware.WSPlayerIDLocal).(string)
	conn := service.NewSafeConn(c)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		log.Printf("Failed to register connection: %v", err)
		sendError(conn, playerID, err)
		if err := c.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			sendError(conn, playerID, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Printf("handle error: %v", err)
			sendError(conn, playerID, err)
		}
	}

	// Clean up when connection closes
	wsc.gameService.UnregisterConnection(gameID, playerID)
}

// A successful move answers through the game's state broadcast.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var payload ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("malformed move: %w", err)
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, payload.MoveKey)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func sendError(conn service.Conn, playerID string, err error) {
	if werr := conn.WriteJSON(ws.ErrorMessage(err)); werr != nil {
		log.Printf("write error to player %s: %v", playerID, werr)
	}
}
