package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	keyPrefix = "effects:snapshot:"
	indexKey  = "effects:snapshots"

	// DefaultTTL keeps snapshots of entities the engine stopped reporting from piling up
	DefaultTTL = 10 * time.Minute
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a Redis-backed snapshot repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, apperr.InvalidArgument("redis client is required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          ttl,
	}, nil
}

func snapshotKey(entityID string) string {
	return keyPrefix + entityID
}

func (r *redisRepo) Save(ctx context.Context, snapshot *EntitySnapshot) error {
	if snapshot == nil {
		return apperr.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.EntityID == "" {
		return apperr.InvalidArgument("snapshot entity id is required")
	}

	snapshot.UpdatedAt = r.timeProvider.Now()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal snapshot")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, snapshotKey(snapshot.EntityID), string(data), r.ttl)
	pipe.SAdd(ctx, indexKey, snapshot.EntityID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to save snapshot to Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, entityID string) (*EntitySnapshot, error) {
	if entityID == "" {
		return nil, apperr.InvalidArgument("entity id is required")
	}

	data, err := r.client.Get(ctx, snapshotKey(entityID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("snapshot for %s not found", entityID).WithMeta("entity_id", entityID)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get snapshot from Redis")
	}

	var snapshot EntitySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, apperr.Wrapf(err, "failed to unmarshal snapshot for %s", entityID)
	}

	return &snapshot, nil
}

func (r *redisRepo) List(ctx context.Context) ([]*EntitySnapshot, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list snapshot ids from Redis")
	}

	found := make([]*EntitySnapshot, len(ids))

	var mu sync.Mutex
	var expired []interface{}

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			snapshot, err := r.Get(gctx, id)
			if apperr.IsNotFound(err) {
				// The key ran out its TTL but the index still names it
				mu.Lock()
				expired = append(expired, id)
				mu.Unlock()
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get snapshot %s: %w", id, err)
			}
			found[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(expired) > 0 {
		if err := r.client.SRem(ctx, indexKey, expired...).Err(); err != nil {
			log.Printf("Snapshots: Failed to prune %d expired ids: %v", len(expired), err)
		}
	}

	out := slices.DeleteFunc(found, func(s *EntitySnapshot) bool { return s == nil })
	slices.SortFunc(out, func(a, b *EntitySnapshot) int {
		return strings.Compare(a.EntityID, b.EntityID)
	})
	return out, nil
}

func (r *redisRepo) Delete(ctx context.Context, entityID string) error {
	if entityID == "" {
		return apperr.InvalidArgument("entity id is required")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, snapshotKey(entityID))
	pipe.SRem(ctx, indexKey, entityID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to delete snapshot from Redis")
	}

	return nil
}
