package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSink stores the latest update per job in Redis so progress survives
// process restarts and is visible to other nodes.
type RedisSink struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSink(addr string, ttl time.Duration, logger *slog.Logger) (*RedisSink, error) {
	if logger == nil {
		logger = slog.Default()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSink{rdb: rdb, ttl: ttl, logger: logger}, nil
}

func progressKey(jobID uuid.UUID) string {
	return "job-progress-" + jobID.String()
}

// Report is best-effort: a failed write is logged, never surfaced to the
// worker loop.
func (s *RedisSink) Report(ctx context.Context, jobID uuid.UUID, update Update) {
	raw, err := json.Marshal(update)
	if err != nil {
		s.logger.Error("marshal progress update", "job_id", jobID, "error", err)
		return
	}
	if err := s.rdb.Set(ctx, progressKey(jobID), raw, s.ttl).Err(); err != nil {
		s.logger.Warn("store progress update", "job_id", jobID, "error", err)
	}
}

func (s *RedisSink) Get(ctx context.Context, jobID uuid.UUID) (Update, bool) {
	raw, err := s.rdb.Get(ctx, progressKey(jobID)).Bytes()
	if err != nil {
		return Update{}, false
	}
	var update Update
	if err := json.Unmarshal(raw, &update); err != nil {
		s.logger.Warn("decode progress update", "job_id", jobID, "error", err)
		return Update{}, false
	}
	return update, true
}

// Forget deletes the job's progress key; the TTL would reap it eventually
// anyway, so a failed delete is only logged.
func (s *RedisSink) Forget(ctx context.Context, jobID uuid.UUID) {
	if err := s.rdb.Del(ctx, progressKey(jobID)).Err(); err != nil {
		s.logger.Warn("drop progress update", "job_id", jobID, "error", err)
	}
}

// Close releases the underlying Redis connection.
func (s *RedisSink) Close() error {
	return s.rdb.Close()
}
