package storages

import (
	"sync"
	"time"

	"github.com/ydataai/search-service/internal/configurations"
	"github.com/ydataai/search-service/internal/models"
)

type cacheEntry struct {
	results   models.SearchResults
	expiresAt time.Time
}

// ResultsCache is a struct to temporarily saving search results.
type ResultsCache struct {
	configuration configurations.ResultsCacheConfiguration
	entries       map[string]cacheEntry
	mtx           sync.Mutex
}

// NewResultsCache creates a new in-memory cache for search results.
func NewResultsCache(configuration configurations.ResultsCacheConfiguration) *ResultsCache {
	return &ResultsCache{
		configuration: configuration,
		entries:       make(map[string]cacheEntry),
	}
}

// Store stores search results in memory until the TTL elapses.
func (rc *ResultsCache) Store(key string, results models.SearchResults) {
	rc.mtx.Lock()
	defer rc.mtx.Unlock()

	now := time.Now()
	rc.sweep(now)

	if len(rc.entries) >= rc.configuration.MaxEntries {
		rc.evictOldest()
	}

	rc.entries[key] = cacheEntry{
		results:   results,
		expiresAt: now.Add(rc.configuration.TTL),
	}
}

// Get gets search results that have been saved in memory.
func (rc *ResultsCache) Get(key string) (models.SearchResults, bool) {
	rc.mtx.Lock()
	defer rc.mtx.Unlock()

	entry, ok := rc.entries[key]
	if !ok {
		return models.SearchResults{}, false
	}

	if time.Now().After(entry.expiresAt) {
		delete(rc.entries, key)
		return models.SearchResults{}, false
	}

	return entry.results, true
}

// sweep removes every expired entry. Callers must hold the lock.
func (rc *ResultsCache) sweep(now time.Time) {
	for key, entry := range rc.entries {
		if now.After(entry.expiresAt) {
			delete(rc.entries, key)
		}
	}
}

// evictOldest removes the entry closest to expiring. Callers must hold the lock.
func (rc *ResultsCache) evictOldest() {
	var oldestKey string
	var oldestExpiry time.Time

	for key, entry := range rc.entries {
		if oldestKey == "" || entry.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiresAt
		}
	}

	if oldestKey != "" {
		delete(rc.entries, oldestKey)
	}
}
