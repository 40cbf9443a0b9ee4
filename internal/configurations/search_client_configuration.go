package configurations

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// SearchClientConfiguration defines a struct with required environment variables for the search API client.
type SearchClientConfiguration struct {
	SearchAPIURL   string        `envconfig:"SEARCH_API_URL" default:"https://api.github.com"`
	APIToken       string        `envconfig:"SEARCH_API_TOKEN" default:""`
	VaultTokenPath string        `envconfig:"SEARCH_API_TOKEN_VAULT_PATH" default:""`
	VaultTokenKey  string        `envconfig:"SEARCH_API_TOKEN_VAULT_KEY" default:"token"`
	HTTPTimeout    time.Duration `envconfig:"SEARCH_HTTP_TIMEOUT" default:"15s"`
	UserAgent      string        `envconfig:"SEARCH_USER_AGENT" default:"ydata-search-service"`
}

// LoadFromEnvVars from the search API client.
func (sc *SearchClientConfiguration) LoadFromEnvVars() error {
	return envconfig.Process("", sc)
}
