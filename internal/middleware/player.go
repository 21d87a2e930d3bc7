package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// PlayerIDLocal is the fiber local holding the caller's player id.
const PlayerIDLocal = "playerID"

// maxPlayerIDLen bounds the ids that end up as seat and connection keys.
const maxPlayerIDLen = 64

// EnsurePlayerID reads the caller's id from the X-Player-ID header or the
// playerId query value. Browsers cannot set headers on a websocket
// handshake, hence the query fallback.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(PlayerIDLocal) != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}

		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}
		if len(playerID) > maxPlayerIDLen {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player ID is too long",
			})
		}

		// Header and query values alias the request buffer, which fasthttp
		// reuses for the next request. The id outlives this one.
		c.Locals(PlayerIDLocal, utils.CopyString(playerID))
		return c.Next()
	}
}
