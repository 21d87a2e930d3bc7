package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/YishaiYosifov/chess2-sub007/internal/config"
	"github.com/YishaiYosifov/chess2-sub007/internal/engine"
	"github.com/YishaiYosifov/chess2-sub007/internal/service"
)

func newTestApp() *fiber.App {
	gameService := service.NewGameService(service.NewGameManager(engine.NewDefault(), config.DefaultLayout()))
	app := fiber.New()
	RegisterRoutes(app, NewGameController(gameService), NewWebSocketController(gameService), config.Default())
	return app
}

func do(t *testing.T, app *fiber.App, method, path, playerID, body string, out any) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if playerID != "" {
		req.Header.Set("X-Player-ID", playerID)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func createGame(t *testing.T, app *fiber.App) string {
	t.Helper()
	var created struct {
		GameID string `json:"game_id"`
	}
	if status := do(t, app, "POST", "/api/game/create", "alice", "", &created); status != fiber.StatusOK {
		t.Fatalf("create status = %d", status)
	}
	for _, playerID := range []string{"alice", "bob"} {
		if status := do(t, app, "POST", "/api/game/join/"+created.GameID, playerID, "", nil); status != fiber.StatusOK {
			t.Fatalf("join %s status = %d", playerID, status)
		}
	}
	return created.GameID
}

func TestPlayerIDRequired(t *testing.T) {
	app := newTestApp()
	if status := do(t, app, "POST", "/api/game/create", "", "", nil); status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
}

func TestJoinGame(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	var joined struct {
		Color string `json:"color"`
	}
	if status := do(t, app, "POST", "/api/game/join/"+gameID, "bob", "", &joined); status != fiber.StatusOK || joined.Color != "black" {
		t.Errorf("rejoin: status %d color %q, want 200 black", status, joined.Color)
	}
	if status := do(t, app, "POST", "/api/game/join/"+gameID, "carol", "", nil); status != fiber.StatusConflict {
		t.Errorf("third player status = %d, want 409", status)
	}
	if status := do(t, app, "POST", "/api/game/join/missing", "carol", "", nil); status != fiber.StatusNotFound {
		t.Errorf("missing game status = %d, want 404", status)
	}
}

func TestGetGameState(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	var state service.GameState
	if status := do(t, app, "GET", "/api/game/"+gameID, "alice", "", &state); status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if state.ToMove.String() != "white" || len(state.Pieces) != 42 || len(state.LegalMoves.Moves) == 0 {
		t.Errorf("state: %s to move, %d pieces, %d legal moves", state.ToMove, len(state.Pieces), len(state.LegalMoves.Moves))
	}
	if status := do(t, app, "GET", "/api/game/missing", "alice", "", nil); status != fiber.StatusNotFound {
		t.Errorf("missing game status = %d, want 404", status)
	}
}

func TestGetLegalMoves(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)

	var resp struct {
		Moves []struct {
			MoveKey string `json:"moveKey"`
		} `json:"moves"`
	}
	if status := do(t, app, "GET", "/api/game/"+gameID+"/moves?square=f2", "alice", "", &resp); status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(resp.Moves) != 3 {
		t.Errorf("f2 has %d moves, want 3", len(resp.Moves))
	}
	for _, square := range []string{"zz", "k1", "a11", "z99"} {
		if status := do(t, app, "GET", "/api/game/"+gameID+"/moves?square="+square, "alice", "", nil); status != fiber.StatusBadRequest {
			t.Errorf("square %s status = %d, want 400", square, status)
		}
	}
}

func TestMakeMove(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)
	path := "/api/game/" + gameID + "/move"

	tests := []struct {
		name     string
		playerID string
		body     string
		want     int
	}{
		{"not your turn", "bob", `{"moveKey":"e9e7"}`, fiber.StatusConflict},
		{"spectator", "carol", `{"moveKey":"e2e4"}`, fiber.StatusForbidden},
		{"illegal", "alice", `{"moveKey":"e2e9"}`, fiber.StatusUnprocessableEntity},
		{"no key", "alice", `{}`, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := do(t, app, "POST", path, tt.playerID, tt.body, nil); status != tt.want {
				t.Errorf("status = %d, want %d", status, tt.want)
			}
		})
	}

	var record service.MoveRecord
	if status := do(t, app, "POST", path, "alice", `{"moveKey":"e2e4"}`, &record); status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if record.Notation != "e4" || record.Move.MoveKey != "e2e4" {
		t.Errorf("record = %+v", record)
	}
	if status := do(t, app, "POST", path, "alice", `{"moveKey":"f2f3"}`, nil); status != fiber.StatusConflict {
		t.Errorf("second white move status = %d, want 409", status)
	}
}

func TestSeatsSurviveOtherRequests(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)
	for _, playerID := range []string{"zzzzz", "qqqqq"} {
		do(t, app, "GET", "/api/game/"+gameID, playerID, "", nil)
	}

	var state service.GameState
	if status := do(t, app, "GET", "/api/game/"+gameID, "carol", "", &state); status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if state.Players.White == nil || state.Players.White.ID != "alice" || state.Players.Black == nil || state.Players.Black.ID != "bob" {
		t.Errorf("seats = %+v / %+v, want alice / bob", state.Players.White, state.Players.Black)
	}

	path := "/api/game/" + gameID + "/move"
	if status := do(t, app, "POST", path, "qqqqq", `{"moveKey":"e2e4"}`, nil); status != fiber.StatusForbidden {
		t.Errorf("stranger move status = %d, want 403", status)
	}
	if status := do(t, app, "POST", path, "alice", `{"moveKey":"e2e4"}`, nil); status != fiber.StatusOK {
		t.Errorf("alice move status = %d, want 200", status)
	}
}

func TestWebSocketRouteRequiresUpgrade(t *testing.T) {
	app := newTestApp()
	gameID := createGame(t, app)
	if status := do(t, app, "GET", "/ws/game/"+gameID, "alice", "", nil); status != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d, want 426", status)
	}
}
