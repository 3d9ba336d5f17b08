package snapshots

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
)

type storedSnapshot struct {
	snapshot  EntitySnapshot
	expiresAt time.Time
}

type inMemoryRepository struct {
	mu           sync.RWMutex
	snapshots    map[string]storedSnapshot
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewInMemoryRepository creates a snapshot repository that keeps copies in a
// map. Entries past the ttl read as missing, like expired Redis keys.
func NewInMemoryRepository(timeProvider TimeProvider, ttl time.Duration) Repository {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &inMemoryRepository{
		snapshots:    make(map[string]storedSnapshot),
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

func (r *inMemoryRepository) Save(ctx context.Context, snapshot *EntitySnapshot) error {
	if snapshot == nil {
		return apperr.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.EntityID == "" {
		return apperr.InvalidArgument("snapshot entity id is required")
	}

	now := r.timeProvider.Now()
	snapshot.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.EntityID] = storedSnapshot{
		snapshot:  clone(snapshot),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, entityID string) (*EntitySnapshot, error) {
	now := r.timeProvider.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.snapshots[entityID]
	if !ok || !now.Before(stored.expiresAt) {
		return nil, apperr.NotFoundf("snapshot for %s not found", entityID).WithMeta("entity_id", entityID)
	}

	out := clone(&stored.snapshot)
	return &out, nil
}

func (r *inMemoryRepository) List(ctx context.Context) ([]*EntitySnapshot, error) {
	now := r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*EntitySnapshot, 0, len(r.snapshots))
	for id, stored := range r.snapshots {
		if !now.Before(stored.expiresAt) {
			delete(r.snapshots, id)
			continue
		}
		s := clone(&stored.snapshot)
		out = append(out, &s)
	}

	slices.SortFunc(out, func(a, b *EntitySnapshot) int {
		return strings.Compare(a.EntityID, b.EntityID)
	})
	return out, nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, entityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, entityID)
	return nil
}

func clone(s *EntitySnapshot) EntitySnapshot {
	out := *s
	out.Custom = slices.Clone(s.Custom)
	if s.Visual != nil {
		out.Visual = make(map[string]int, len(s.Visual))
		for k, v := range s.Visual {
			out.Visual[k] = v
		}
	}
	return out
}
