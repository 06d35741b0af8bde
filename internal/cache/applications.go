package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/redis/go-redis/v9"
)

// applicationsTTL bounds staleness for entries that miss an explicit
// invalidation, e.g. when a write races a server crash.
const applicationsTTL = 5 * time.Minute

// ApplicationCache caches paginated job application listings per job.
type ApplicationCache interface {
	GetJobApplications(ctx context.Context, jobID int32, page, pageSize int) ([]db.JobApplication, bool, error)
	SetJobApplications(ctx context.Context, jobID int32, page, pageSize int, applications []db.JobApplication) error
	InvalidateJob(ctx context.Context, jobID int32) error
}

// RedisApplicationCache implements ApplicationCache on top of Redis. Every
// cached page is tracked in a per-job key set so that a single write to a
// job's applications can drop all of its cached pages at once.
type RedisApplicationCache struct {
	client *redis.Client
}

func NewRedisApplicationCache(client *redis.Client) *RedisApplicationCache {
	return &RedisApplicationCache{client: client}
}

func applicationsKey(jobID int32, page, pageSize int) string {
	return fmt.Sprintf("job_applications:%d:%d:%d", jobID, page, pageSize)
}

func applicationsKeySet(jobID int32) string {
	return fmt.Sprintf("job_applications:keys:%d", jobID)
}

// GetJobApplications returns the cached page for the job, and whether the
// page was present in the cache.
func (cache *RedisApplicationCache) GetJobApplications(ctx context.Context, jobID int32, page, pageSize int) ([]db.JobApplication, bool, error) {
	data, err := cache.client.Get(ctx, applicationsKey(jobID, page, pageSize)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached applications: %w", err)
	}

	var applications []db.JobApplication
	if err := json.Unmarshal(data, &applications); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached applications: %w", err)
	}

	return applications, true, nil
}

// SetJobApplications caches the page and records its key in the job's key
// set for later invalidation.
func (cache *RedisApplicationCache) SetJobApplications(ctx context.Context, jobID int32, page, pageSize int, applications []db.JobApplication) error {
	data, err := json.Marshal(applications)
	if err != nil {
		return fmt.Errorf("failed to marshal applications: %w", err)
	}

	key := applicationsKey(jobID, page, pageSize)
	keySet := applicationsKeySet(jobID)

	pipe := cache.client.TxPipeline()
	pipe.Set(ctx, key, data, applicationsTTL)
	pipe.SAdd(ctx, keySet, key)
	pipe.Expire(ctx, keySet, applicationsTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache applications: %w", err)
	}

	return nil
}

// InvalidateJob drops every cached page for the job.
func (cache *RedisApplicationCache) InvalidateJob(ctx context.Context, jobID int32) error {
	keySet := applicationsKeySet(jobID)

	keys, err := cache.client.SMembers(ctx, keySet).Result()
	if err != nil {
		return fmt.Errorf("failed to list cached application keys: %w", err)
	}

	keys = append(keys, keySet)
	if err := cache.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached applications: %w", err)
	}

	return nil
}
