package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/services"
	websocketHub "github.com/jan-pavel/ost-arduino-fishing-game/pkg/websocket"
)

const leaderboardLimit = 10

// GameHandler exposes the controller's supervision surface: game state,
// start/reset/catch controls (the HTTP descendant of the serial debug
// console), the leaderboard and the live WebSocket feed.
type GameHandler struct {
	game        *services.GameService
	leaderboard *services.LeaderboardService
	hub         *websocketHub.Hub
}

// NewGameHandler wires the services. leaderboard may be nil when Redis is
// not configured.
func NewGameHandler(game *services.GameService, leaderboard *services.LeaderboardService, hub *websocketHub.Hub) *GameHandler {
	return &GameHandler{
		game:        game,
		leaderboard: leaderboard,
		hub:         hub,
	}
}

var upgrader = websocket.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		return true // spectator feed is open in development
	},
}

// HandleWebSocket upgrades a spectator connection and feeds it snapshots.
func (gh *GameHandler) HandleWebSocket(ctx *fasthttp.RequestCtx) {
	err := upgrader.Upgrade(ctx, func(ws *websocket.Conn) {
		defer ws.Close()

		gh.hub.Register(ws)
		defer gh.hub.Unregister(ws)

		// Send the current snapshot on connect.
		message := websocketHub.Message{
			Type: "snapshot",
			Data: gh.game.Snapshot(time.Now()),
		}
		data, _ := json.Marshal(message)
		ws.WriteMessage(websocket.TextMessage, data)

		// Drain the client until it disconnects.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}
	})

	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		ctx.Error("Error upgrading to WebSocket", fasthttp.StatusInternalServerError)
	}
}

// HealthCheck reports liveness.
func (gh *GameHandler) HealthCheck(ctx *fasthttp.RequestCtx) {
	gh.respondWithSuccess(ctx, map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
	}, "Controller running")
}

// GetState returns the current game snapshot.
func (gh *GameHandler) GetState(ctx *fasthttp.RequestCtx) {
	gh.respondWithSuccess(ctx, map[string]interface{}{
		"game": gh.game.Snapshot(time.Now()),
	}, "Game state")
}

// StartGame presses the Start button remotely.
func (gh *GameHandler) StartGame(ctx *fasthttp.RequestCtx) {
	if !gh.game.Start(time.Now()) {
		gh.respondWithError(ctx, fasthttp.StatusBadRequest, "A round is already running")
		return
	}

	gh.respondWithSuccess(ctx, map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
	}, "Countdown started")

	log.Println("🟢 Round started from the API")
}

// ResetGame presses the Reset button remotely: a hard override from any state.
func (gh *GameHandler) ResetGame(ctx *fasthttp.RequestCtx) {
	gh.game.Reset(time.Now())

	gh.respondWithSuccess(ctx, map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
	}, "Game reset")

	log.Println("🔴 Game reset from the API")
}

// InjectCatch simulates a sensor trigger on the given position, the same
// thing typing "1".."5" on the serial console did on the hardware build.
func (gh *GameHandler) InjectCatch(ctx *fasthttp.RequestCtx) {
	var req models.CatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		gh.respondWithError(ctx, fasthttp.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Position < 1 || req.Position > models.NumPositions {
		gh.respondWithError(ctx, fasthttp.StatusBadRequest, "Position must be between 1 and 5")
		return
	}

	gh.game.Trigger(req.Position, time.Now())

	gh.respondWithSuccess(ctx, map[string]interface{}{
		"position": req.Position,
		"game":     gh.game.Snapshot(time.Now()),
	}, "Trigger injected")
}

// GetLeaderboard returns the best finished rounds.
func (gh *GameHandler) GetLeaderboard(ctx *fasthttp.RequestCtx) {
	if gh.leaderboard == nil {
		gh.respondWithError(ctx, fasthttp.StatusServiceUnavailable, "Leaderboard disabled (no Redis configured)")
		return
	}

	response, err := gh.leaderboard.Leaderboard(leaderboardLimit)
	if err != nil {
		log.Printf("⚠️ Error loading leaderboard: %v", err)
		gh.respondWithError(ctx, fasthttp.StatusInternalServerError, "Error loading leaderboard")
		return
	}

	gh.respondWithSuccess(ctx, response, "Leaderboard")
}

func (gh *GameHandler) respondWithError(ctx *fasthttp.RequestCtx, statusCode int, message string) {
	response := models.APIResponse{
		Success: false,
		Error:   message,
	}
	gh.respondWithJSON(ctx, statusCode, response)
}

func (gh *GameHandler) respondWithSuccess(ctx *fasthttp.RequestCtx, data interface{}, message string) {
	response := models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
	gh.respondWithJSON(ctx, fasthttp.StatusOK, response)
}

func (gh *GameHandler) respondWithJSON(ctx *fasthttp.RequestCtx, statusCode int, data interface{}) {
	ctx.SetStatusCode(statusCode)
	ctx.SetContentType("application/json")
	json.NewEncoder(ctx).Encode(data)
}
