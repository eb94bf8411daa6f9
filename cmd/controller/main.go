package main

import (
	"log"
	"os"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/handlers"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/hardware"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/redis"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/services"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/transport"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/websocket"
)

// Polling cadence of the hardware build's main loop.
const tickInterval = 10 * time.Millisecond

var (
	redisClient        *redis.RedisClient
	gameService        *services.GameService
	leaderboardService *services.LeaderboardService
	gameHandler        *handlers.GameHandler
	hub                *websocket.Hub
)

func main() {
	log.Println("🚀 Starting fishing game controller")

	broadcastAddr := getEnv("BROADCAST_ADDR", "255.255.255.255:8830")
	httpAddr := getEnv("HTTP_ADDR", ":8080")

	tx, err := transport.NewBroadcaster(broadcastAddr)
	if err != nil {
		log.Fatalf("❌ Error opening wireless link: %v", err)
	}
	defer tx.Close()
	log.Printf("📡 Broadcasting commands to %s", broadcastAddr)

	initRedis()
	initServices(tx)
	go runGameLoop()

	server := &fasthttp.Server{
		Handler: requestHandler,
		Name:    "Fishing Game Controller",
	}

	log.Println("🎣 Fishing game controller ready")
	log.Printf("🔧 API Health: http://localhost%s/api/health", httpAddr)
	log.Printf("🎮 Game state: http://localhost%s/api/game/state", httpAddr)
	log.Println("🔄 Press Ctrl+C to stop")

	if err := server.ListenAndServe(httpAddr); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

func initRedis() {
	// The leaderboard is optional: without Redis the game itself is
	// unaffected, finished rounds are just not recorded.
	redisAddr := getEnv("REDIS_ADDR", "")
	if redisAddr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, leaderboard disabled")
		return
	}

	redisPassword := getEnv("REDIS_PASSWORD", "")
	redisDB := 0

	log.Printf("🔌 Connecting to Redis at %s...", redisAddr)
	redisClient = redis.NewRedisClient(redisAddr, redisPassword, redisDB)
}

func initServices(tx services.Sender) {
	log.Println("⚙️  Initializing services...")

	timeDisplay := hardware.NewConsoleDisplay("time")
	scoreDisplay := hardware.NewConsoleDisplay("score")
	gameService = services.NewGameService(tx, timeDisplay, scoreDisplay)

	hub = websocket.NewHub()
	go hub.Run()
	gameService.SetChangeFunc(hub.BroadcastSnapshot)

	if redisClient != nil {
		leaderboardService = services.NewLeaderboardService(redisClient)
		gameService.SetFinishFunc(leaderboardService.RecordRound)
	}

	gameHandler = handlers.NewGameHandler(gameService, leaderboardService, hub)
}

// runGameLoop is the controller's cooperative polling loop: sample inputs,
// advance timers, repeat. The simulated inputs stand in for the buttons and
// hall sensors; the physical drivers plug into the same Poller.
func runGameLoop() {
	startButton := hardware.NewSimInput()
	resetButton := hardware.NewSimInput()
	sensors := make([]hardware.DigitalInput, models.NumPositions)
	for i := range sensors {
		sensors[i] = hardware.NewSimInput()
	}

	poller := hardware.NewPoller(startButton, resetButton, sensors)
	poller.OnStart(func(now time.Time) { gameService.Start(now) })
	poller.OnReset(gameService.Reset)
	poller.OnSensor(gameService.Trigger)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for now := range ticker.C {
		poller.Sample(now)
		gameService.Tick(now)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	ctx.Response.Header.Set("Server", "FishingGame-FastHTTP/1.0")
	ctx.Response.Header.Set("Cache-Control", "no-cache")

	// CORS headers for development
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if method == "OPTIONS" {
		ctx.SetStatusCode(fasthttp.StatusOK)
		return
	}

	switch {
	case path == "/api/health":
		gameHandler.HealthCheck(ctx)
	case path == "/api/game/state" && method == "GET":
		gameHandler.GetState(ctx)
	case path == "/api/game/start" && method == "POST":
		gameHandler.StartGame(ctx)
	case path == "/api/game/reset" && method == "POST":
		gameHandler.ResetGame(ctx)
	case path == "/api/game/catch" && method == "POST":
		gameHandler.InjectCatch(ctx)
	case path == "/api/leaderboard" && method == "GET":
		gameHandler.GetLeaderboard(ctx)
	case path == "/ws":
		gameHandler.HandleWebSocket(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"success":false,"error":"not found"}`)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
