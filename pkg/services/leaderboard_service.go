package services

import (
	"fmt"
	"log"
	"time"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

// ScoreStore persists finished rounds. Only completed rounds ever reach the
// store; live game state is never written anywhere.
type ScoreStore interface {
	SaveScore(record models.ScoreRecord) error
	TopScores(limit int) ([]models.ScoreRecord, error)
	ScoreCount() (int, error)
}

// LeaderboardService records final scores and serves the score table.
type LeaderboardService struct {
	store ScoreStore
}

// NewLeaderboardService creates the service on top of a score store.
func NewLeaderboardService(store ScoreStore) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// RecordRound saves one finished round. Failures are logged and swallowed:
// the leaderboard must never interfere with the game loop.
func (s *LeaderboardService) RecordRound(roundID string, score int) {
	record := models.ScoreRecord{
		ID:         roundID,
		Score:      score,
		FinishedAt: time.Now(),
	}
	if err := s.store.SaveScore(record); err != nil {
		log.Printf("⚠️ Could not record round %s: %v", roundID, err)
		return
	}
	log.Printf("🏆 Recorded round %s with score %d", roundID, score)
}

// Leaderboard returns the best rounds, highest score first.
func (s *LeaderboardService) Leaderboard(limit int) (*models.LeaderboardResponse, error) {
	records, err := s.store.TopScores(limit)
	if err != nil {
		return nil, fmt.Errorf("error loading top scores: %v", err)
	}

	total, err := s.store.ScoreCount()
	if err != nil {
		return nil, fmt.Errorf("error counting rounds: %v", err)
	}

	entries := make([]models.LeaderboardEntry, len(records))
	for i, record := range records {
		entries[i] = models.LeaderboardEntry{
			Position:   i + 1,
			RoundID:    record.ID,
			Score:      record.Score,
			FinishedAt: record.FinishedAt,
		}
	}

	return &models.LeaderboardResponse{
		Leaderboard: entries,
		TotalRounds: total,
	}, nil
}
