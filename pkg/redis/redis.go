package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

// RedisClient wraps the go-redis connection used for the leaderboard.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

const (
	scoresKey      = "fishing:scores"   // sorted set: round ID scored by final score
	roundKeyFormat = "fishing:round:%s" // JSON blob per finished round
)

// NewRedisClient connects and verifies the connection.
func NewRedisClient(addr, password string, db int) *RedisClient {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("❌ Error connecting to Redis: %v", err)
	}

	log.Println("✅ Connected to Redis")

	return &RedisClient{
		client: rdb,
		ctx:    ctx,
	}
}

// SaveScore stores one finished round and ranks it in the score set.
func (r *RedisClient) SaveScore(record models.ScoreRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error serializing round: %v", err)
	}

	key := fmt.Sprintf(roundKeyFormat, record.ID)
	if err := r.client.Set(r.ctx, key, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("error saving round: %v", err)
	}

	member := redis.Z{Score: float64(record.Score), Member: record.ID}
	if err := r.client.ZAdd(r.ctx, scoresKey, member).Err(); err != nil {
		return fmt.Errorf("error ranking round: %v", err)
	}

	return nil
}

// TopScores returns up to limit finished rounds, best first.
func (r *RedisClient) TopScores(limit int) ([]models.ScoreRecord, error) {
	ids, err := r.client.ZRevRange(r.ctx, scoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading score ranking: %v", err)
	}

	var records []models.ScoreRecord
	for _, id := range ids {
		key := fmt.Sprintf(roundKeyFormat, id)
		recordJSON, err := r.client.Get(r.ctx, key).Result()
		if err != nil {
			log.Printf("⚠️ Missing round record %s: %v", id, err)
			continue
		}

		var record models.ScoreRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			log.Printf("⚠️ Corrupt round record %s: %v", id, err)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// ScoreCount returns the number of recorded rounds.
func (r *RedisClient) ScoreCount() (int, error) {
	count, err := r.client.ZCard(r.ctx, scoresKey).Result()
	if err != nil {
		return 0, fmt.Errorf("error counting rounds: %v", err)
	}
	return int(count), nil
}

// HealthCheck verifies that Redis is still reachable.
func (r *RedisClient) HealthCheck() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err != nil {
		return fmt.Errorf("redis health check failed: %v", err)
	}
	return nil
}

// Close closes the connection.
func (r *RedisClient) Close() error {
	return r.client.Close()
}
