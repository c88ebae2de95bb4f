package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeInnerDirectory counts roster reads.
type fakeInnerDirectory struct {
	resources []Resource
	err       error
	calls     int
}

func (f *fakeInnerDirectory) ListResources(ctx context.Context) ([]Resource, error) {
	f.calls++
	return f.resources, f.err
}

func (f *fakeInnerDirectory) ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]Interval, error) {
	return nil, nil
}

func (f *fakeInnerDirectory) InsertEvent(ctx context.Context, calendarID string, event Event) (*InsertedEvent, error) {
	return nil, nil
}

// fakeRosterCache returns canned redis results and records writes.
type fakeRosterCache struct {
	getValue string
	getErr   error
	setErr   error
	setCalls int
}

func (f *fakeRosterCache) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult(f.getValue, f.getErr)
}

func (f *fakeRosterCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.setCalls++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	return redis.NewStatusResult("OK", nil)
}

func TestCachedDirectoryHit(t *testing.T) {
	roster := []Resource{{ID: "cal-1", Label: "activo/Pereira/FT-01/furgon/12m"}}
	data, err := json.Marshal(roster)
	require.NoError(t, err)

	inner := &fakeInnerDirectory{}
	dir := NewCachedDirectory(inner, &fakeRosterCache{getValue: string(data)}, time.Minute, zap.NewNop())

	got, err := dir.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roster, got)
	assert.Equal(t, 0, inner.calls, "a cache hit must not reach upstream")
}

func TestCachedDirectoryMissStoresRoster(t *testing.T) {
	roster := []Resource{{ID: "cal-1", Label: "activo/Pereira/FT-01/furgon/12m"}}
	inner := &fakeInnerDirectory{resources: roster}
	cache := &fakeRosterCache{getErr: redis.Nil}
	dir := NewCachedDirectory(inner, cache, time.Minute, zap.NewNop())

	got, err := dir.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roster, got)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, cache.setCalls)
}

func TestCachedDirectoryFallsThroughOnCacheErrors(t *testing.T) {
	roster := []Resource{{ID: "cal-1", Label: "activo/Pereira/FT-01/furgon/12m"}}

	// Redis unreachable on both read and write.
	inner := &fakeInnerDirectory{resources: roster}
	cache := &fakeRosterCache{getErr: errors.New("dial tcp: connection refused"), setErr: errors.New("dial tcp: connection refused")}
	dir := NewCachedDirectory(inner, cache, time.Minute, zap.NewNop())

	got, err := dir.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roster, got)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedDirectoryIgnoresCorruptEntry(t *testing.T) {
	roster := []Resource{{ID: "cal-1", Label: "activo/Pereira/FT-01/furgon/12m"}}
	inner := &fakeInnerDirectory{resources: roster}
	dir := NewCachedDirectory(inner, &fakeRosterCache{getValue: "{not json"}, time.Minute, zap.NewNop())

	got, err := dir.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roster, got)
	assert.Equal(t, 1, inner.calls, "corrupt cache entries must fall through")
}

func TestCachedDirectoryPropagatesUpstreamError(t *testing.T) {
	upstream := errors.New("googleapi: Error 403: insufficient permissions")
	inner := &fakeInnerDirectory{err: upstream}
	cache := &fakeRosterCache{getErr: redis.Nil}
	dir := NewCachedDirectory(inner, cache, time.Minute, zap.NewNop())

	_, err := dir.ListResources(context.Background())
	require.ErrorIs(t, err, upstream)
	assert.Equal(t, 0, cache.setCalls, "failed upstream reads are not cached")
}
