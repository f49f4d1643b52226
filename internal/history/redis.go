// Package history persists archived payments. The original dashboard kept
// them client-side under the localStorage key "riwayatPembayaran"; here the
// same key addresses a redis list shared by the archiver and the /riwayat
// endpoint.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"mbg-project/internal/models"

	"github.com/redis/go-redis/v9"
)

// Key is the list the archive records live under.
const Key = "riwayatPembayaran"

type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisStore{client: client, key: Key}, nil
}

func (s *RedisStore) Append(ctx context.Context, rec models.HistoricalPayment) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding riwayat record: %w", err)
	}

	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("appending riwayat record: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]models.HistoricalPayment, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading riwayat list: %w", err)
	}

	records := make([]models.HistoricalPayment, 0, len(raw))
	for _, item := range raw {
		var rec models.HistoricalPayment
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decoding riwayat record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
