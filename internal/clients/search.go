package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ydataai/go-core/pkg/common/logging"
	"golang.org/x/oauth2"

	"github.com/ydataai/search-service/internal/configurations"
	"github.com/ydataai/search-service/internal/models"
)

// SearchClient defines an interface for the upstream repository search API.
type SearchClient interface {
	StartSetup()
	Ready() bool
	SearchRepositories(ctx context.Context, query string, page, perPage int) (models.SearchResults, error)
}

// RESTSearchClient defines a struct that talks to the repository search API.
type RESTSearchClient struct {
	configuration configurations.SearchClientConfiguration
	httpClient    *http.Client
	readyzFunc    func() bool
	logger        logging.Logger
}

// NewRESTSearchClient defines a new client for the repository search API.
func NewRESTSearchClient(logger logging.Logger,
	configuration configurations.SearchClientConfiguration) SearchClient {

	httpClient := &http.Client{Timeout: configuration.HTTPTimeout}
	if configuration.APIToken != "" {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: configuration.APIToken})
		httpClient = oauth2.NewClient(context.Background(), tokenSource)
		httpClient.Timeout = configuration.HTTPTimeout
	}

	return &RESTSearchClient{
		configuration: configuration,
		httpClient:    httpClient,
		readyzFunc:    func() bool { return false },
		logger:        logger,
	}
}

// StartSetup initializes setup for the search API.
func (rc *RESTSearchClient) StartSetup() {
	ctx := context.Background()

	// make sure it is available
	rc.isAvailable(ctx)
}

// Ready reports whether the search API has been reached at least once.
func (rc *RESTSearchClient) Ready() bool {
	return rc.readyzFunc()
}

// SearchRepositories searches the upstream API for repositories matching the query.
func (rc *RESTSearchClient) SearchRepositories(ctx context.Context,
	query string, page, perPage int) (models.SearchResults, error) {

	endpoint := fmt.Sprintf("%s/search/repositories", rc.configuration.SearchAPIURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.SearchResults{}, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	req.URL.RawQuery = params.Encode()

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", rc.configuration.UserAgent)

	res, err := rc.httpClient.Do(req)
	if err != nil {
		return models.SearchResults{}, fmt.Errorf("failed to reach the search API. Error: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.SearchResults{}, fmt.Errorf("failed to read the search API response. Error: %v", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return models.SearchResults{}, rc.apiError(res.StatusCode, body)
	}

	results := models.SearchResults{}
	if err := json.Unmarshal(body, &results); err != nil {
		return models.SearchResults{}, fmt.Errorf("failed to decode the search API response. Error: %v", err)
	}

	return results, nil
}

// apiError builds an APIError from a failed response body. A body that
// is not a JSON object, or carries an unexpected "message" value, still
// yields an APIError, just without a message.
func (rc *RESTSearchClient) apiError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}

	payload := map[string]interface{}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		rc.logger.Warnf("search API returned a non-JSON error body. Status: %d", statusCode)
		return apiErr
	}

	errorPayload, err := models.ErrorPayloadFromPayload(payload)
	if err != nil {
		rc.logger.Warnf("failed to parse the search API error body: %v", err)
		return apiErr
	}

	apiErr.Payload = errorPayload
	return apiErr
}

func (rc *RESTSearchClient) isAvailable(ctx context.Context) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rc.configuration.SearchAPIURL, nil)
		if err != nil {
			rc.logger.Errorf("search API setup failed: %v", err)
			return
		}
		req.Header.Set("User-Agent", rc.configuration.UserAgent)

		res, err := rc.httpClient.Do(req)
		if err == nil {
			res.Body.Close()
			break
		}
		rc.logger.Errorf("search API is unreachable, retrying in 10 seconds: %v", err)
		time.Sleep(10 * time.Second)
	}

	rc.readyzFunc = func() bool { return true }
}
