package main

import (
	"log"
	"os"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/board"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/hardware"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/transport"
)

func main() {
	log.Println("🚀 Starting fishing game board (receiver)")

	listenAddr := getEnv("LISTEN_ADDR", ":8830")

	leds := hardware.NewConsoleLEDBank(models.NumPositions)
	executor := board.NewExecutor(leds)

	receiver, err := transport.NewReceiver(listenAddr)
	if err != nil {
		log.Fatalf("❌ Error binding receiver: %v", err)
	}
	defer receiver.Close()

	log.Printf("📡 Listening for commands on %s", receiver.Addr())
	log.Println("--- Receiver Ready (Supports ALL/OFF) ---")

	err = receiver.Listen(func(cmd models.Command) {
		log.Printf("📥 Received %q", cmd.String())
		executor.Execute(cmd)
	})
	if err != nil {
		log.Fatalf("❌ Receiver stopped: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
