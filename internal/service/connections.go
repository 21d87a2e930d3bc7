package service

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v any) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// SafeConn serializes writes to a connection shared by the relay loop and
// game broadcasts.
type SafeConn struct {
	conn Conn
	mu   sync.Mutex
}

func NewSafeConn(conn Conn) *SafeConn {
	return &SafeConn{conn: conn}
}

func (c *SafeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *SafeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *SafeConn) Close() error {
	return c.conn.Close()
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// add keeps an existing connection and closes a duplicate.
func (gc *GameConnections) add(playerID string, conn Conn) bool {
	gc.mu.Lock()
	if _, exists := gc.connections[playerID]; exists {
		gc.mu.Unlock()
		if err := conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		); err != nil {
			log.Printf("closing duplicate connection of player %s: %v", playerID, err)
		}
		if err := conn.Close(); err != nil {
			log.Printf("closing duplicate connection of player %s: %v", playerID, err)
		}
		return false
	}
	gc.connections[playerID] = conn
	gc.mu.Unlock()
	return true
}

func (gc *GameConnections) remove(playerID string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	delete(gc.connections, playerID)
}

func (gc *GameConnections) Len() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return len(gc.connections)
}

// broadcast writes v to every connection without holding the lock and
// drops the connections that fail.
func (gc *GameConnections) broadcast(v any) {
	gc.mu.RLock()
	active := make(map[string]Conn, len(gc.connections))
	for playerID, conn := range gc.connections {
		active[playerID] = conn
	}
	gc.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(v); err != nil {
			log.Printf("dropping connection of player %s: %v", playerID, err)
			gc.mu.Lock()
			if gc.connections[playerID] == conn {
				delete(gc.connections, playerID)
			}
			gc.mu.Unlock()
		}
	}
}
