package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydataai/search-service/internal/clients"
	"github.com/ydataai/search-service/internal/configurations"
	searchErrors "github.com/ydataai/search-service/internal/errors"
	"github.com/ydataai/search-service/internal/models"
	"github.com/ydataai/search-service/internal/storages"
)

type MockSearchClient struct {
	results     models.SearchResults
	err         error
	calls       int
	lastPage    int
	lastPerPage int
}

func NewMockSearchClient(results models.SearchResults, err error) *MockSearchClient {
	return &MockSearchClient{
		results: results,
		err:     err,
	}
}

func (m *MockSearchClient) StartSetup() {}

func (m *MockSearchClient) Ready() bool { return true }

func (m *MockSearchClient) SearchRepositories(ctx context.Context,
	query string, page, perPage int) (models.SearchResults, error) {

	m.calls++
	m.lastPage = page
	m.lastPerPage = perPage
	return m.results, m.err
}

// setupSearchService is a helper, because it's necessary to call many times.
func setupSearchService(searchClient clients.SearchClient) (SearchService, *storages.MemoryQueryHistory) {
	cacheConfiguration := configurations.ResultsCacheConfiguration{}
	cacheConfiguration.TTL = time.Minute
	cacheConfiguration.MaxEntries = 16

	historyConfiguration := configurations.QueryHistoryConfiguration{}
	historyConfiguration.Capacity = 8

	resultsCache := storages.NewResultsCache(cacheConfiguration)
	queryHistory := storages.NewMemoryQueryHistory(historyConfiguration)

	return NewRepositorySearchService(setupLogger(), searchClient, resultsCache, queryHistory), queryHistory
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	results := models.SearchResults{
		TotalCount: 1,
		Items: []models.Repository{
			{ID: 1, FullName: "golang/go", Language: "Go"},
		},
	}

	mockSearchClient := NewMockSearchClient(results, nil)
	ssvc, queryHistory := setupSearchService(mockSearchClient)

	response, err := ssvc.Search(ctx, models.SearchRequest{Query: "  golang  "})
	require.NoError(t, err)

	assert.Equal(t, "golang", response.Query)
	assert.Equal(t, 1, response.Page)
	assert.Equal(t, 30, response.PerPage)
	assert.Equal(t, int64(1), response.TotalCount)
	assert.False(t, response.Cached)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "golang/go", response.Items[0].FullName)

	recent, err := queryHistory.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "golang", recent[0].Query)
	assert.Equal(t, int64(1), recent[0].TotalCount)
	assert.NotEmpty(t, recent[0].ID)
}

func TestSearchEmptyQuery(t *testing.T) {
	ctx := context.Background()
	mockSearchClient := NewMockSearchClient(models.SearchResults{}, nil)
	ssvc, _ := setupSearchService(mockSearchClient)

	testCases := []string{"", "   ", "\t\n"}

	for _, query := range testCases {
		_, err := ssvc.Search(ctx, models.SearchRequest{Query: query})
		assert.ErrorIs(t, err, searchErrors.ErrorEmptyQuery)
		assert.True(t, searchErrors.IsEmptyQuery(err))
	}

	assert.Zero(t, mockSearchClient.calls, "the upstream API must not be called for empty queries")
}

func TestSearchServedFromCache(t *testing.T) {
	ctx := context.Background()

	mockSearchClient := NewMockSearchClient(models.SearchResults{TotalCount: 3}, nil)
	ssvc, queryHistory := setupSearchService(mockSearchClient)

	first, err := ssvc.Search(ctx, models.SearchRequest{Query: "golang"})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	// Same query with different casing must hit the cache.
	second, err := ssvc.Search(ctx, models.SearchRequest{Query: "GoLang"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.TotalCount, second.TotalCount)

	assert.Equal(t, 1, mockSearchClient.calls)

	// Cached searches are not recorded again.
	recent, err := queryHistory.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestSearchNormalizesPagination(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		page            int
		perPage         int
		expectedPage    int
		expectedPerPage int
	}{
		{page: 0, perPage: 0, expectedPage: 1, expectedPerPage: 30},
		{page: -3, perPage: -1, expectedPage: 1, expectedPerPage: 30},
		{page: 2, perPage: 50, expectedPage: 2, expectedPerPage: 50},
		{page: 7, perPage: 500, expectedPage: 7, expectedPerPage: 100},
	}

	for _, tt := range testCases {
		mockSearchClient := NewMockSearchClient(models.SearchResults{}, nil)
		ssvc, _ := setupSearchService(mockSearchClient)

		response, err := ssvc.Search(ctx, models.SearchRequest{
			Query:   "golang",
			Page:    tt.page,
			PerPage: tt.perPage,
		})
		require.NoError(t, err)

		assert.Equal(t, tt.expectedPage, mockSearchClient.lastPage)
		assert.Equal(t, tt.expectedPerPage, mockSearchClient.lastPerPage)
		assert.Equal(t, tt.expectedPage, response.Page)
		assert.Equal(t, tt.expectedPerPage, response.PerPage)
	}
}

func TestSearchClientError(t *testing.T) {
	ctx := context.Background()

	mockSearchClient := NewMockSearchClient(models.SearchResults{}, errors.New("upstream unavailable"))
	ssvc, queryHistory := setupSearchService(mockSearchClient)

	_, err := ssvc.Search(ctx, models.SearchRequest{Query: "golang"})
	assert.Error(t, err)

	recent, err := queryHistory.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent, "failed searches must not be recorded")
}

func TestRecentQueries(t *testing.T) {
	ctx := context.Background()

	mockSearchClient := NewMockSearchClient(models.SearchResults{TotalCount: 1}, nil)
	ssvc, _ := setupSearchService(mockSearchClient)

	for _, query := range []string{"golang", "gin", "testify"} {
		_, err := ssvc.Search(ctx, models.SearchRequest{Query: query})
		require.NoError(t, err)
	}

	recent, err := ssvc.RecentQueries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "testify", recent[0].Query)
	assert.Equal(t, "gin", recent[1].Query)
}
