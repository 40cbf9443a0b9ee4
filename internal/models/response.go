package models

import "time"

// SearchResponse defines a struct with the JSON response for a repository search.
type SearchResponse struct {
	Query             string       `json:"query"`
	Page              int          `json:"page"`
	PerPage           int          `json:"per_page"`
	TotalCount        int64        `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results,omitempty"`
	Cached            bool         `json:"cached"`
	Items             []Repository `json:"items"`
}

// RecentQueriesResponse defines a struct with the JSON response for the query history.
type RecentQueriesResponse struct {
	Queries []QueryRecord `json:"queries"`
}

// ErrorResponse defines a struct with the JSON error response.
type ErrorResponse struct {
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}
