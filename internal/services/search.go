package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ydataai/go-core/pkg/common/logging"

	"github.com/ydataai/search-service/internal/clients"
	searchErrors "github.com/ydataai/search-service/internal/errors"
	"github.com/ydataai/search-service/internal/models"
	"github.com/ydataai/search-service/internal/storages"
)

const (
	defaultPerPage = 30
	maxPerPage     = 100
)

// SearchService defines an interface for repository searches.
type SearchService interface {
	Search(ctx context.Context, request models.SearchRequest) (models.SearchResponse, error)
	RecentQueries(ctx context.Context, limit int) ([]models.QueryRecord, error)
}

// RepositorySearchService defines the repository search service struct.
type RepositorySearchService struct {
	searchClient clients.SearchClient
	resultsCache *storages.ResultsCache
	queryHistory storages.QueryHistory
	logger       logging.Logger
}

// NewRepositorySearchService creates a new repository search service struct.
func NewRepositorySearchService(logger logging.Logger,
	searchClient clients.SearchClient,
	resultsCache *storages.ResultsCache,
	queryHistory storages.QueryHistory) SearchService {

	return &RepositorySearchService{
		searchClient: searchClient,
		resultsCache: resultsCache,
		queryHistory: queryHistory,
		logger:       logger,
	}
}

// Search runs a repository search, serving from the cache when possible.
func (rss *RepositorySearchService) Search(ctx context.Context,
	request models.SearchRequest) (models.SearchResponse, error) {

	query := strings.TrimSpace(request.Query)
	if query == "" {
		return models.SearchResponse{}, searchErrors.ErrorEmptyQuery
	}

	page := request.Page
	if page < 1 {
		page = 1
	}

	perPage := request.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	cacheKey := fmt.Sprintf("%s|%d|%d", strings.ToLower(query), page, perPage)
	if results, ok := rss.resultsCache.Get(cacheKey); ok {
		rss.logger.Infof("✔️ cache hit for %q (page %d)", query, page)
		return newSearchResponse(query, page, perPage, results, true), nil
	}

	results, err := rss.searchClient.SearchRepositories(ctx, query, page, perPage)
	if err != nil {
		return models.SearchResponse{}, err
	}

	rss.resultsCache.Store(cacheKey, results)
	rss.recordQuery(ctx, query, page, results.TotalCount)

	return newSearchResponse(query, page, perPage, results, false), nil
}

// RecentQueries gets the most recently executed queries.
func (rss *RepositorySearchService) RecentQueries(ctx context.Context, limit int) ([]models.QueryRecord, error) {
	return rss.queryHistory.Recent(ctx, limit)
}

// recordQuery stores the executed query. A history failure must not
// break the search flow.
func (rss *RepositorySearchService) recordQuery(ctx context.Context, query string, page int, totalCount int64) {
	record := models.QueryRecord{
		ID:         uuid.New().String(),
		Query:      query,
		Page:       page,
		TotalCount: totalCount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := rss.queryHistory.Record(ctx, record); err != nil {
		rss.logger.Warnf("failed to record the search query. Error: %v", err)
	}
}

func newSearchResponse(query string, page, perPage int,
	results models.SearchResults, cached bool) models.SearchResponse {

	return models.SearchResponse{
		Query:             query,
		Page:              page,
		PerPage:           perPage,
		TotalCount:        results.TotalCount,
		IncompleteResults: results.IncompleteResults,
		Cached:            cached,
		Items:             results.Items,
	}
}
