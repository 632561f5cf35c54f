package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"container-tracker/internal/core/cache"
	"container-tracker/internal/core/logger"
	"container-tracker/internal/features/containers/domain"
	"container-tracker/internal/features/containers/ports"

	"go.uber.org/zap"
)

const snapshotCacheKey = "containers:snapshot"

// CachedRepository decorates a ContainerRepository with a shared snapshot cache.
// Cache failures never fail a request; the origin is used instead.
type CachedRepository struct {
	origin ports.ContainerRepository
	cache  cache.Cache
	ttl    time.Duration
}

// NewCachedRepository creates a new CachedRepository.
func NewCachedRepository(origin ports.ContainerRepository, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		origin: origin,
		cache:  c,
		ttl:    ttl,
	}
}

// List serves the snapshot from the cache, falling back to the origin on a miss.
func (r *CachedRepository) List(ctx context.Context) ([]domain.Container, error) {
	log := logger.Named("snapshot-cache")

	data, err := r.cache.Get(ctx, snapshotCacheKey)
	if err == nil {
		var snapshot []domain.Container
		if err := json.Unmarshal(data, &snapshot); err == nil {
			log.Debug("Snapshot served from cache", zap.Int("containers", len(snapshot)))
			return snapshot, nil
		}
		log.Warn("Discarding unreadable cached snapshot")
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn("Snapshot cache unavailable", zap.Error(err))
	}

	snapshot, err := r.origin.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(snapshot)
	if err != nil {
		log.Warn("Failed to encode snapshot for cache", zap.Error(err))
		return snapshot, nil
	}
	if err := r.cache.Set(ctx, snapshotCacheKey, data, r.ttl); err != nil {
		log.Warn("Failed to store snapshot in cache", zap.Error(err))
	}

	return snapshot, nil
}

// Create forwards to the origin and invalidates the cached snapshot.
func (r *CachedRepository) Create(ctx context.Context, c *domain.Container) error {
	if err := r.origin.Create(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Update forwards to the origin and invalidates the cached snapshot.
func (r *CachedRepository) Update(ctx context.Context, c *domain.Container) error {
	if err := r.origin.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete forwards to the origin and invalidates the cached snapshot.
func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := r.origin.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Invalidate drops the cached snapshot so the next List hits the origin.
func (r *CachedRepository) Invalidate(ctx context.Context) {
	r.invalidate(ctx)
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, snapshotCacheKey); err != nil {
		logger.Named("snapshot-cache").Warn("Failed to invalidate snapshot", zap.Error(err))
	}
}
