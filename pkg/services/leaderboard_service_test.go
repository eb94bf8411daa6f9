package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

type memoryStore struct {
	records []models.ScoreRecord
	failing bool
}

func (m *memoryStore) SaveScore(record models.ScoreRecord) error {
	if m.failing {
		return errors.New("store down")
	}
	m.records = append(m.records, record)
	return nil
}

func (m *memoryStore) TopScores(limit int) ([]models.ScoreRecord, error) {
	if m.failing {
		return nil, errors.New("store down")
	}
	sorted := append([]models.ScoreRecord(nil), m.records...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *memoryStore) ScoreCount() (int, error) {
	if m.failing {
		return 0, errors.New("store down")
	}
	return len(m.records), nil
}

func TestLeaderboardRanksByScore(t *testing.T) {
	store := &memoryStore{}
	service := NewLeaderboardService(store)

	service.RecordRound("round-a", 3)
	service.RecordRound("round-b", 9)
	service.RecordRound("round-c", 6)

	response, err := service.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if response.TotalRounds != 3 {
		t.Fatalf("total rounds = %d, want 3", response.TotalRounds)
	}

	wantOrder := []string{"round-b", "round-c", "round-a"}
	for i, entry := range response.Leaderboard {
		if entry.RoundID != wantOrder[i] {
			t.Errorf("entry %d = %s, want %s", i, entry.RoundID, wantOrder[i])
		}
		if entry.Position != i+1 {
			t.Errorf("entry %d position = %d, want %d", i, entry.Position, i+1)
		}
	}
}

func TestLeaderboardLimit(t *testing.T) {
	store := &memoryStore{}
	service := NewLeaderboardService(store)

	for i := 0; i < 5; i++ {
		service.RecordRound("round", i)
	}

	response, err := service.Leaderboard(2)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(response.Leaderboard) != 2 {
		t.Fatalf("entries = %d, want 2", len(response.Leaderboard))
	}
	if response.TotalRounds != 5 {
		t.Fatalf("total rounds = %d, want 5", response.TotalRounds)
	}
}

func TestRecordRoundSwallowsStoreErrors(t *testing.T) {
	store := &memoryStore{failing: true}
	service := NewLeaderboardService(store)

	// Must not panic or propagate: the game loop calls this.
	service.RecordRound("round-x", 4)

	if _, err := service.Leaderboard(10); err == nil {
		t.Fatal("Leaderboard should surface store errors")
	}
}
