package geocoding

import (
	"context"
	"testing"
	"time"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	searches int
	reverses int
	err      error
}

func (g *countingGeocoder) Search(_ context.Context, query string) (*entity.Location, error) {
	g.searches++
	if g.err != nil {
		return nil, g.err
	}

	return &entity.Location{Latitude: 28.61, Longitude: 77.21, Address: "found: " + query}, nil
}

func (g *countingGeocoder) Reverse(_ context.Context, lat, lng float64) (*entity.Location, error) {
	g.reverses++
	if g.err != nil {
		return nil, g.err
	}

	return &entity.Location{Latitude: lat, Longitude: lng, Address: "Connaught Place"}, nil
}

type cacheCounts struct {
	hits, misses int
}

func (c *cacheCounts) ObserveGeocodeCache(_ string, hit bool) {
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func newCachedForTest(t *testing.T, inner service.Geocoder, ttl time.Duration) (*Cached, *miniredis.Miniredis, *cacheCounts) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	counts := &cacheCounts{}

	return NewCached(inner, client, ttl, discardLogger(), counts), server, counts
}

func TestCached_SearchHitAndMiss(t *testing.T) {
	inner := &countingGeocoder{}
	cached, server, counts := newCachedForTest(t, inner, time.Hour)
	ctx := context.Background()

	first, err := cached.Search(ctx, "Connaught  Place")
	require.NoError(t, err)
	second, err := cached.Search(ctx, "  connaught place ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.searches)
	assert.Equal(t, 1, counts.hits)
	assert.Equal(t, 1, counts.misses)
	assert.True(t, server.Exists("geocode:search:connaught place"))
}

func TestCached_ReverseExpires(t *testing.T) {
	inner := &countingGeocoder{}
	cached, server, _ := newCachedForTest(t, inner, time.Minute)
	ctx := context.Background()

	_, err := cached.Reverse(ctx, 28.6315, 77.2167)
	require.NoError(t, err)
	_, err = cached.Reverse(ctx, 28.6315, 77.2167)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.reverses)
	assert.True(t, server.Exists("geocode:reverse:28.631500,77.216700"))

	server.FastForward(2 * time.Minute)

	_, err = cached.Reverse(ctx, 28.6315, 77.2167)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.reverses)
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	inner := &countingGeocoder{err: service.ErrNoGeocodingResult}
	cached, server, _ := newCachedForTest(t, inner, time.Hour)
	ctx := context.Background()

	_, err := cached.Search(ctx, "atlantis")
	assert.ErrorIs(t, err, service.ErrNoGeocodingResult)
	_, err = cached.Search(ctx, "atlantis")
	assert.ErrorIs(t, err, service.ErrNoGeocodingResult)

	assert.Equal(t, 2, inner.searches)
	assert.Empty(t, server.Keys())
}

func TestCached_RedisDownFallsThrough(t *testing.T) {
	inner := &countingGeocoder{}
	cached, server, _ := newCachedForTest(t, inner, time.Hour)
	server.Close()

	location, err := cached.Search(context.Background(), "Karol Bagh")
	require.NoError(t, err)
	assert.Equal(t, "found: Karol Bagh", location.Address)
	assert.Equal(t, 1, inner.searches)
}

func TestCached_UnreadableEntryIsDropped(t *testing.T) {
	inner := &countingGeocoder{}
	cached, server, _ := newCachedForTest(t, inner, time.Hour)
	require.NoError(t, server.Set("geocode:search:karol bagh", "{not json"))

	location, err := cached.Search(context.Background(), "Karol Bagh")
	require.NoError(t, err)
	assert.Equal(t, "found: Karol Bagh", location.Address)
	assert.Equal(t, 1, inner.searches)
}
