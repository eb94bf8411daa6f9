package models

import "time"

// GameState is the controller's state machine position. It is owned
// exclusively by the game service; state transitions are the only
// mutation path.
type GameState int

const (
	StateIdle GameState = iota
	StateCountdown
	StatePlaying
	StateGameOver
)

var stateName = map[GameState]string{
	StateIdle:      "idle",
	StateCountdown: "countdown",
	StatePlaying:   "playing",
	StateGameOver:  "game_over",
}

func (s GameState) String() string {
	return stateName[s]
}

// MarshalJSON renders the state by name rather than ordinal.
func (s GameState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Snapshot is the read-only view of the game published to the HTTP API
// and the WebSocket feed.
type Snapshot struct {
	RoundID        string    `json:"roundId,omitempty"`
	State          GameState `json:"state"`
	Score          int       `json:"score"`
	ActivePosition int       `json:"activePosition,omitempty"` // 1..NumPositions while playing
	TimeLeft       int       `json:"timeLeft"`                 // whole seconds left in the round
	Countdown      int       `json:"countdown,omitempty"`      // 3..1 while counting down
	Timestamp      time.Time `json:"timestamp"`
}
