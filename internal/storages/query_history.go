package storages

import (
	"context"
	"sync"

	"github.com/ydataai/search-service/internal/configurations"
	"github.com/ydataai/search-service/internal/models"
)

// QueryHistory defines an interface for recording executed search queries.
type QueryHistory interface {
	Record(ctx context.Context, record models.QueryRecord) error
	Recent(ctx context.Context, limit int) ([]models.QueryRecord, error)
}

// MemoryQueryHistory is a struct to temporarily saving executed queries.
type MemoryQueryHistory struct {
	configuration configurations.QueryHistoryConfiguration
	records       []models.QueryRecord
	mtx           sync.RWMutex
}

// NewMemoryQueryHistory creates a new in-memory query history.
func NewMemoryQueryHistory(configuration configurations.QueryHistoryConfiguration) *MemoryQueryHistory {
	return &MemoryQueryHistory{
		configuration: configuration,
		records:       make([]models.QueryRecord, 0, configuration.Capacity),
	}
}

// Record stores an executed query in memory, discarding the oldest
// entry once the configured capacity is reached.
func (mh *MemoryQueryHistory) Record(ctx context.Context, record models.QueryRecord) error {
	mh.mtx.Lock()
	defer mh.mtx.Unlock()

	if len(mh.records) >= mh.configuration.Capacity {
		mh.records = mh.records[1:]
	}
	mh.records = append(mh.records, record)

	return nil
}

// Recent gets the most recent queries, newest first.
func (mh *MemoryQueryHistory) Recent(ctx context.Context, limit int) ([]models.QueryRecord, error) {
	mh.mtx.RLock()
	defer mh.mtx.RUnlock()

	if limit < 0 || limit > len(mh.records) {
		limit = len(mh.records)
	}

	recent := make([]models.QueryRecord, 0, limit)
	for i := len(mh.records) - 1; i >= len(mh.records)-limit; i-- {
		recent = append(recent, mh.records[i])
	}

	return recent, nil
}
