package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/websocket/v2"
)

// Locals carried from the upgrade request into the websocket handler.
const (
	GameIDLocal     = "wsGameID"
	WSPlayerIDLocal = "wsPlayerID"
)

// WebSocketUpgrade admits websocket handshakes for /ws/game/:gameId and
// hands the game and player ids to the connection handler. Must run after
// EnsurePlayerID.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}

		playerID, ok := c.Locals(PlayerIDLocal).(string)
		if !ok || playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		// Route params alias the request buffer too; the connection
		// handler runs long after fasthttp has recycled it.
		c.Locals(GameIDLocal, utils.CopyString(gameID))
		c.Locals(WSPlayerIDLocal, playerID)
		return c.Next()
	}
}
