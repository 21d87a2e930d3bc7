package ws

import (
	"encoding/json"
	"fmt"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload is what a client sends to play a move.
type MovePayload struct {
	MoveKey string `json:"moveKey"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(messageType MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", messageType, err)
	}
	return Message{Type: messageType, Payload: raw}, nil
}

// ErrorMessage never fails to marshal.
func ErrorMessage(err error) Message {
	raw, _ := json.Marshal(ErrorPayload{Message: err.Error()})
	return Message{Type: MessageTypeError, Payload: raw}
}
