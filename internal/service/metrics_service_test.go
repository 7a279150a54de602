package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/syllabi", 200, 10*time.Millisecond)
	m.ObserveUpstream("list_syllabi", 200, 20*time.Millisecond)
	m.ObserveUpstream("list_syllabi", 0, 5*time.Millisecond)
	m.ObserveUpstream("get_syllabus", 503, 5*time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(1), snap.RequestsTotal)
	assert.Equal(t, uint64(3), snap.UpstreamCalls)
	assert.Equal(t, uint64(2), snap.UpstreamFailures)
	assert.InDelta(t, 0.5, snap.CacheHitRatio, 0.0001)
	assert.InDelta(t, 10.0, snap.AverageUpstreamDurationMs, 0.0001)
}

func TestMetricsHandlerExposesUpstreamSeries(t *testing.T) {
	m := NewMetricsService()
	m.ObserveUpstream("list_users", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `cosyll_api_requests_total{operation="list_users",status="200"} 1`))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *MetricsService
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveUpstream("x", 200, time.Millisecond)
		m.RecordCacheOperation(true, time.Millisecond)
		m.RecordAuditFailure()
	})
	assert.Zero(t, m.Snapshot().RequestsTotal)
}

func TestCacheServiceDisabled(t *testing.T) {
	store := newMemoryCache()
	cache := NewCacheService(store, nil, 0, zap.NewNop(), false)
	assert.False(t, cache.Enabled())

	hit, err := cache.Get(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Set(context.Background(), "k", 1, 0))
	assert.Empty(t, store.items)
}

func TestCacheServiceRoundTrip(t *testing.T) {
	store := newMemoryCache()
	cache := NewCacheService(store, NewMetricsService(), time.Minute, zap.NewNop(), true)

	require.NoError(t, cache.Set(context.Background(), listingKey("users"), []string{"a"}, 0))
	var got []string
	hit, err := cache.Get(context.Background(), listingKey("users"), &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a"}, got)

	cache.InvalidateAll(context.Background())
	hit, err = cache.Get(context.Background(), listingKey("users"), &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
