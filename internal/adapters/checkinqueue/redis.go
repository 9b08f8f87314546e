package checkinqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"eventattendance/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Redis stores records as JSON strings in a list, oldest at the head.
type Redis struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedis builds a queue on the list at key, defaulting to domain.OfflineQueueKey.
// Each station needs a key of its own; see domain.StationQueueKey.
func NewRedis(client *redis.Client, key string, logger *slog.Logger) *Redis {
	if key == "" {
		key = domain.OfflineQueueKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{client: client, key: key, logger: logger}
}

func (q *Redis) Append(ctx context.Context, rec domain.OfflineCheckIn) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode check-in: %w", err)
	}
	return q.client.RPush(ctx, q.key, b).Err()
}

func (q *Redis) List(ctx context.Context) ([]domain.OfflineCheckIn, error) {
	raw, err := q.client.LRange(ctx, q.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.OfflineCheckIn, 0, len(raw))
	for _, s := range raw {
		var rec domain.OfflineCheckIn
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			// Removed here so the positions Trim counts match the returned slice.
			q.logger.Error("dropping undecodable check-in", "key", q.key, "err", err)
			if err := q.client.LRem(ctx, q.key, 1, s).Err(); err != nil {
				return nil, fmt.Errorf("remove undecodable check-in: %w", err)
			}
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// Trim removes the n oldest records.
func (q *Redis) Trim(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	return q.client.LTrim(ctx, q.key, int64(n), -1).Err()
}

func (q *Redis) Len(ctx context.Context) (int, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	return int(n), err
}
