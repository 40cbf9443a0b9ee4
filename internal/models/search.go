package models

import "time"

// Owner defines the account a repository belongs to.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Repository defines a single repository returned by the search API.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Owner       Owner     `json:"owner"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stargazers  int64     `json:"stargazers_count"`
	Forks       int64     `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// SearchResults defines the decoded body of a successful search API response.
type SearchResults struct {
	TotalCount        int64        `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []Repository `json:"items"`
}

// SearchRequest defines the parameters of one repository search.
type SearchRequest struct {
	Query   string
	Page    int
	PerPage int
}

// QueryRecord defines one entry of the search query history.
type QueryRecord struct {
	ID         string    `db:"id" json:"id"`
	Query      string    `db:"query" json:"query"`
	Page       int       `db:"page" json:"page"`
	TotalCount int64     `db:"total_count" json:"total_count"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
