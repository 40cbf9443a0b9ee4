package configurations

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ResultsCacheConfiguration defines a struct with required environment variables for the results cache.
type ResultsCacheConfiguration struct {
	TTL        time.Duration `envconfig:"RESULTS_CACHE_TTL" default:"300s"`
	MaxEntries int           `envconfig:"RESULTS_CACHE_MAX_ENTRIES" default:"512"`
}

// LoadFromEnvVars reads all env vars.
func (cc *ResultsCacheConfiguration) LoadFromEnvVars() error {
	return envconfig.Process("", cc)
}
