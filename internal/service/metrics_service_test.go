package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheRepoStub struct {
	values map[string]interface{}
	err    error
}

func (s *cacheRepoStub) Get(ctx context.Context, key string, dest interface{}) error {
	return s.err
}

func (s *cacheRepoStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	if s.values == nil {
		s.values = map[string]interface{}{}
	}
	s.values[key] = value
	return nil
}

func (s *cacheRepoStub) DeleteByPattern(ctx context.Context, pattern string) error {
	return s.err
}

func histogramSampleCount(t *testing.T, m *MetricsService, name string) uint64 {
	t.Helper()
	families, err := m.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric %s not registered", name)
	return 0
}

func TestMetricsServiceObservesCacheWrites(t *testing.T) {
	m := NewMetricsService()
	m.ObserveCacheWrite(3 * time.Millisecond)
	m.ObserveCacheWrite(7 * time.Millisecond)
	assert.Equal(t, uint64(2), histogramSampleCount(t, m, "cache_write_duration_seconds"))
}

func TestMetricsServiceNilReceiverIsSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveCacheWrite(time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordBackupPruned()
	assert.NotNil(t, m.Handler())
}

func TestCacheServiceSetTimesTheWrite(t *testing.T) {
	metrics := NewMetricsService()
	cache := NewCacheService(&cacheRepoStub{}, metrics, time.Minute, nil, true)

	require.NoError(t, cache.Set(context.Background(), "leaderboard:top:10", []int{1, 2, 3}, 0))
	assert.Equal(t, uint64(1), histogramSampleCount(t, metrics, "cache_write_duration_seconds"))
}
