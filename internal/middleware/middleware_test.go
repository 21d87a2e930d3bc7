package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"
)

func send(t *testing.T, app *fiber.App, path, playerID string, upgrade bool) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if playerID != "" {
		req.Header.Set("X-Player-ID", playerID)
	}
	if upgrade {
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestEnsurePlayerID(t *testing.T) {
	app := fiber.New()
	app.Get("/", EnsurePlayerID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(PlayerIDLocal).(string))
	})

	tests := []struct {
		name     string
		path     string
		playerID string
		want     int
	}{
		{"header", "/", "alice", fiber.StatusOK},
		{"query", "/?playerId=bob", "", fiber.StatusOK},
		{"missing", "/", "", fiber.StatusUnauthorized},
		{"too long", "/", strings.Repeat("p", maxPlayerIDLen+1), fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := send(t, app, tt.path, tt.playerID, false); status != tt.want {
				t.Errorf("status = %d, want %d", status, tt.want)
			}
		})
	}
}

func TestPlayerIDOutlivesRequest(t *testing.T) {
	var kept []string
	app := fiber.New()
	app.Get("/", EnsurePlayerID(), func(c *fiber.Ctx) error {
		kept = append(kept, c.Locals(PlayerIDLocal).(string))
		return nil
	})

	ids := []string{"alice", "bob", "zzzzz", "qqqqq"}
	for _, id := range ids {
		send(t, app, "/", id, false)
	}
	if diff := cmp.Diff(ids, kept); diff != "" {
		t.Errorf("kept ids (-want +got):\n%s", diff)
	}
}

func TestWebSocketLocalsOutliveRequest(t *testing.T) {
	type handshake struct{ GameID, PlayerID string }
	var kept []handshake
	app := fiber.New()
	app.Get("/ws/game/:gameId", EnsurePlayerID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		kept = append(kept, handshake{
			GameID:   c.Locals(GameIDLocal).(string),
			PlayerID: c.Locals(WSPlayerIDLocal).(string),
		})
		return nil
	})

	send(t, app, "/ws/game/game-one", "alice", true)
	if status := send(t, app, "/ws/game/other", "zzzzz", false); status != fiber.StatusUpgradeRequired {
		t.Errorf("plain GET status = %d, want 426", status)
	}
	send(t, app, "/ws/game/g2?playerId=bob", "", true)

	want := []handshake{{"game-one", "alice"}, {"g2", "bob"}}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("handshakes (-want +got):\n%s", diff)
	}
}
