// Package upstream implements the dashboard repositories on top of the sales
// backend REST API.
package upstream

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/domain/entity"
)

const (
	yearlySalesKey    = "sales:yearly"
	quarterlySalesKey = "sales:quarterly"
)

// CachedSalesRepository is a read-through Redis cache in front of another
// SalesRepository. Entries are scoped to the caller's access token and
// requests without one always go to the source. Cache failures are logged
// and fall back to the source.
type CachedSalesRepository struct {
	source dashboard.SalesRepository
	redis  *redis.Client
	ttl    time.Duration
}

// NewCachedSalesRepository creates a new cached sales repository.
func NewCachedSalesRepository(source dashboard.SalesRepository, client *redis.Client, ttl time.Duration) *CachedSalesRepository {
	return &CachedSalesRepository{
		source: source,
		redis:  client,
		ttl:    ttl,
	}
}

var _ dashboard.SalesRepository = (*CachedSalesRepository)(nil)

// GetYearlySales returns cached monthly sales, fetching them on a miss.
func (r *CachedSalesRepository) GetYearlySales(ctx context.Context) ([]entity.MonthlyYearSeries, error) {
	return readThrough(ctx, r, yearlySalesKey, r.source.GetYearlySales)
}

// GetQuarterlySales returns cached quarterly sales, fetching them on a miss.
func (r *CachedSalesRepository) GetQuarterlySales(ctx context.Context) ([]entity.QuarterlyYearSeries, error) {
	return readThrough(ctx, r, quarterlySalesKey, r.source.GetQuarterlySales)
}

// cacheKey returns the caller's key for base, or false when the request
// carries no access token.
func cacheKey(ctx context.Context, base string) (string, bool) {
	token, ok := AccessTokenFromContext(ctx)
	if !ok {
		return "", false
	}
	sum := sha256.Sum256([]byte(token))
	return base + ":" + hex.EncodeToString(sum[:]), true
}

func readThrough[T any](
	ctx context.Context,
	r *CachedSalesRepository,
	base string,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {
	key, ok := cacheKey(ctx, base)
	if !ok {
		return fetch(ctx)
	}

	cached, err := r.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var result []T
		if err := json.Unmarshal(cached, &result); err == nil {
			return result, nil
		}
		slog.Warn("Discarding unreadable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("Sales cache read failed", "key", key, "error", err)
	}

	result, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		slog.Warn("Failed to encode sales for cache", "key", key, "error", err)
		return result, nil
	}
	if err := r.redis.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		slog.Warn("Sales cache write failed", "key", key, "error", err)
	}

	return result, nil
}
