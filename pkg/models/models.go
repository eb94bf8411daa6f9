package models

import "time"

// APIResponse is the standard envelope for API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CatchRequest is the body of POST /api/game/catch, the HTTP replacement
// for the old serial debug input ("1".."5" injected a catch).
type CatchRequest struct {
	Position int `json:"position"`
}

// ScoreRecord is a finished round as stored in the leaderboard.
type ScoreRecord struct {
	ID         string    `json:"id"`
	Score      int       `json:"score"`
	FinishedAt time.Time `json:"finishedAt"`
}

// LeaderboardEntry is one row of the score table, best first.
type LeaderboardEntry struct {
	Position   int       `json:"position"`
	RoundID    string    `json:"roundId"`
	Score      int       `json:"score"`
	FinishedAt time.Time `json:"finishedAt"`
}

// LeaderboardResponse is the payload of GET /api/leaderboard.
type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	TotalRounds int                `json:"totalRounds"`
}
