package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ResultCache = (*MemoryCache)(nil)
	_ ResultCache = (*RedisCache)(nil)
)

func sampleInputs() domain.ProjectionInputs {
	return domain.ProjectionInputs{
		Principal:           decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(500),
		AnnualRate:          decimal.RequireFromString("0.05"),
		Years:               3,
		Compounding:         domain.CompoundingQuarterly,
		RateRange:           decimal.RequireFromString("0.01"),
	}
}

func sampleResult(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	result, err := calculation.NewProjectionEngine().Project(context.Background(), sampleInputs())
	require.NoError(t, err)
	return result
}

func TestKeyIsStable(t *testing.T) {
	a := sampleInputs()
	b := sampleInputs()
	b.Principal = decimal.RequireFromString("10000.00")
	b.AnnualRate = decimal.RequireFromString("0.050")

	assert.Equal(t, Key(a), Key(b))
	assert.NotEmpty(t, Key(a))
}

func TestKeyDistinguishesInputs(t *testing.T) {
	base := sampleInputs()
	variants := []func(*domain.ProjectionInputs){
		func(in *domain.ProjectionInputs) { in.Principal = decimal.NewFromInt(10001) },
		func(in *domain.ProjectionInputs) { in.MonthlyContribution = decimal.Zero },
		func(in *domain.ProjectionInputs) { in.AnnualRate = decimal.RequireFromString("0.06") },
		func(in *domain.ProjectionInputs) { in.Years = 4 },
		func(in *domain.ProjectionInputs) { in.Compounding = domain.CompoundingDaily },
		func(in *domain.ProjectionInputs) { in.RateRange = decimal.Zero },
	}
	for i, mutate := range variants {
		in := sampleInputs()
		mutate(&in)
		assert.NotEqual(t, Key(base), Key(in), "variant %d", i)
	}
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)
	result := sampleResult(t)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", result))
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Same(t, result, got)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.SetNowFunc(func() time.Time { return now })

	require.NoError(t, c.Set(ctx, "k", sampleResult(t)))

	now = now.Add(59 * time.Second)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCacheSetEvictsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.SetNowFunc(func() time.Time { return now })

	result := sampleResult(t)
	require.NoError(t, c.Set(ctx, "a", result))
	require.NoError(t, c.Set(ctx, "b", result))

	now = now.Add(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "c", result))
	assert.Equal(t, 1, c.Len(), "expired keys are swept without being read")

	_, ok := c.Get(ctx, "c")
	assert.True(t, ok)
}

func TestMemoryCacheGetKeepsEntryRefreshedBeforeEviction(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.SetNowFunc(func() time.Time { return start })
	require.NoError(t, c.Set(ctx, "k", sampleResult(t)))

	// The read sees the entry as expired; by the time the write lock is
	// held the entry is valid again, as after a concurrent Set.
	calls := 0
	c.SetNowFunc(func() time.Time {
		calls++
		if calls == 1 {
			return start.Add(2 * time.Minute)
		}
		return start
	})

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "entry must not be deleted once it is fresh again")
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Millisecond)
	result := sampleResult(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = c.Set(ctx, "k", result)
				if got, ok := c.Get(ctx, "k"); ok {
					assert.Same(t, result, got)
				}
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 1)
}

func TestMemoryCacheNoTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(0)
	c.SetNowFunc(func() time.Time { return now })

	require.NoError(t, c.Set(ctx, "k", sampleResult(t)))
	now = now.Add(24 * 365 * time.Hour)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)
}

func TestRedisCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("SAVINGSPROJ_TEST_REDIS")
	if addr == "" {
		t.Skip("SAVINGSPROJ_TEST_REDIS not set")
	}
	ctx := context.Background()
	c := NewRedisCache(addr, time.Minute)
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	result := sampleResult(t)
	key := Key(result.Inputs)
	require.NoError(t, c.Set(ctx, key, result))

	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.True(t, result.FinalBalance().Equal(got.FinalBalance()))
	assert.Equal(t, result.Inputs.Compounding, got.Inputs.Compounding)
	assert.Len(t, got.Base.Monthly, 36)
	assert.True(t, got.HasRange())

	_, ok = c.Get(ctx, "does-not-exist")
	assert.False(t, ok)
}
