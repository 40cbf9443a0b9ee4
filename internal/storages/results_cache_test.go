package storages

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ydataai/search-service/internal/configurations"
	"github.com/ydataai/search-service/internal/models"
)

func TestResultsCacheStoreAndGet(t *testing.T) {
	cacheConfiguration := configurations.ResultsCacheConfiguration{}
	cacheConfiguration.TTL = time.Minute
	cacheConfiguration.MaxEntries = 16

	cache := NewResultsCache(cacheConfiguration)

	results := models.SearchResults{
		TotalCount: 2,
		Items: []models.Repository{
			{ID: 1, FullName: "ydataai/ydata-sdk"},
			{ID: 2, FullName: "ydataai/ydata-profiling"},
		},
	}

	cache.Store("golang|1|30", results)

	cached, ok := cache.Get("golang|1|30")
	assert.True(t, ok)
	assert.Equal(t, results, cached)

	_, ok = cache.Get("rust|1|30")
	assert.False(t, ok)
}

func TestResultsCacheExpiry(t *testing.T) {
	cacheConfiguration := configurations.ResultsCacheConfiguration{}
	cacheConfiguration.TTL = 10 * time.Millisecond
	cacheConfiguration.MaxEntries = 16

	cache := NewResultsCache(cacheConfiguration)
	cache.Store("golang|1|30", models.SearchResults{TotalCount: 1})

	_, ok := cache.Get("golang|1|30")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = cache.Get("golang|1|30")
	assert.False(t, ok, "entry should expire after the TTL elapses")
}

func TestResultsCacheEviction(t *testing.T) {
	cacheConfiguration := configurations.ResultsCacheConfiguration{}
	cacheConfiguration.TTL = time.Minute
	cacheConfiguration.MaxEntries = 3

	cache := NewResultsCache(cacheConfiguration)

	for i := 0; i < 3; i++ {
		cache.Store(fmt.Sprintf("query-%d|1|30", i), models.SearchResults{TotalCount: int64(i)})
		time.Sleep(time.Millisecond)
	}

	// The next Store exceeds MaxEntries, so the entry closest to
	// expiring (the first one stored) must be evicted.
	cache.Store("query-3|1|30", models.SearchResults{TotalCount: 3})

	_, ok := cache.Get("query-0|1|30")
	assert.False(t, ok)

	for i := 1; i <= 3; i++ {
		_, ok := cache.Get(fmt.Sprintf("query-%d|1|30", i))
		assert.True(t, ok)
	}
}
