package upstream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

type countingSource struct {
	yearly    []entity.MonthlyYearSeries
	quarterly []entity.QuarterlyYearSeries
	err       error
	calls     int
}

func (s *countingSource) GetYearlySales(ctx context.Context) ([]entity.MonthlyYearSeries, error) {
	s.calls++
	return s.yearly, s.err
}

func (s *countingSource) GetQuarterlySales(ctx context.Context) ([]entity.QuarterlyYearSeries, error) {
	s.calls++
	return s.quarterly, s.err
}

func newCachedRepository(t *testing.T, source *countingSource) (*CachedSalesRepository, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCachedSalesRepository(source, client, time.Minute), server
}

func authorized(token string) context.Context {
	return WithAccessToken(context.Background(), token)
}

func scopedKey(t *testing.T, ctx context.Context, base string) string {
	t.Helper()
	key, ok := cacheKey(ctx, base)
	require.True(t, ok)
	return key
}

func TestCachedSalesRepository_ReadThrough(t *testing.T) {
	source := &countingSource{
		yearly: []entity.MonthlyYearSeries{
			{Year: "2022", Data: []entity.MonthlySeriesPoint{{Month: "Jan", Value: 4.5}}},
		},
	}
	repo, server := newCachedRepository(t, source)
	ctx := authorized("token")

	first, err := repo.GetYearlySales(ctx)
	require.NoError(t, err)
	second, err := repo.GetYearlySales(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first, second)
	key := scopedKey(t, ctx, yearlySalesKey)
	assert.True(t, server.Exists(key))
	assert.Equal(t, time.Minute, server.TTL(key))
}

func TestCachedSalesRepository_Expiry(t *testing.T) {
	source := &countingSource{
		quarterly: []entity.QuarterlyYearSeries{{Year: "2022"}},
	}
	repo, server := newCachedRepository(t, source)
	ctx := authorized("token")

	_, err := repo.GetQuarterlySales(ctx)
	require.NoError(t, err)

	server.FastForward(2 * time.Minute)

	_, err = repo.GetQuarterlySales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestCachedSalesRepository_AnonymousBypassesCache(t *testing.T) {
	source := &countingSource{
		yearly: []entity.MonthlyYearSeries{{Year: "2024"}},
	}
	repo, server := newCachedRepository(t, source)

	_, err := repo.GetYearlySales(authorized("good"))
	require.NoError(t, err)

	source.yearly = nil
	source.err = errors.New("unauthorized")
	sales, err := repo.GetYearlySales(context.Background())
	assert.ErrorIs(t, err, source.err)
	assert.Nil(t, sales)
	assert.Equal(t, 2, source.calls)
	assert.Len(t, server.Keys(), 1)
}

func TestCachedSalesRepository_ScopedPerToken(t *testing.T) {
	source := &countingSource{
		quarterly: []entity.QuarterlyYearSeries{{Year: "2024"}},
	}
	repo, server := newCachedRepository(t, source)
	alice := authorized("token-a")
	bob := authorized("token-b")

	_, err := repo.GetQuarterlySales(alice)
	require.NoError(t, err)
	_, err = repo.GetQuarterlySales(bob)
	require.NoError(t, err)
	_, err = repo.GetQuarterlySales(alice)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
	assert.True(t, server.Exists(scopedKey(t, alice, quarterlySalesKey)))
	assert.True(t, server.Exists(scopedKey(t, bob, quarterlySalesKey)))
	assert.NotContains(t, scopedKey(t, alice, quarterlySalesKey), "token-a")
}

func TestCachedSalesRepository_SourceError(t *testing.T) {
	sourceErr := errors.New("backend down")
	repo, server := newCachedRepository(t, &countingSource{err: sourceErr})
	ctx := authorized("token")

	_, err := repo.GetYearlySales(ctx)
	assert.ErrorIs(t, err, sourceErr)
	assert.False(t, server.Exists(scopedKey(t, ctx, yearlySalesKey)))
}

func TestCachedSalesRepository_CacheDown(t *testing.T) {
	source := &countingSource{
		yearly: []entity.MonthlyYearSeries{{Year: "2021"}},
	}
	repo, server := newCachedRepository(t, source)
	server.Close()

	sales, err := repo.GetYearlySales(authorized("token"))
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestCachedSalesRepository_CorruptEntry(t *testing.T) {
	source := &countingSource{
		yearly: []entity.MonthlyYearSeries{{Year: "2021"}},
	}
	repo, server := newCachedRepository(t, source)
	ctx := authorized("token")
	require.NoError(t, server.Set(scopedKey(t, ctx, yearlySalesKey), "{corrupt"))

	sales, err := repo.GetYearlySales(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Equal(t, 1, source.calls)
}
