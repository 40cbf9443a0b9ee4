package configurations

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// RESTControllerConfiguration defines a struct with required environment variables for rest controller.
type RESTControllerConfiguration struct {
	SearchURL          string        `envconfig:"SEARCH_URL" default:"/search"`
	RecentQueriesURL   string        `envconfig:"RECENT_QUERIES_URL" default:"/search/recent"`
	HTTPRequestTimeout time.Duration `envconfig:"HTTP_REQUEST_TIMEOUT" default:"30s"`
	AuthEnabled        bool          `envconfig:"AUTH_ENABLED" default:"false"`
	AuthHeader         string        `envconfig:"AUTH_HEADER" default:"Authorization"`
	RequestIDHeader    string        `envconfig:"REQUEST_ID_HEADER" default:"X-Request-Id"`
	RecentLimitDefault int           `envconfig:"RECENT_LIMIT_DEFAULT" default:"10"`
	RecentLimitMax     int           `envconfig:"RECENT_LIMIT_MAX" default:"100"`
}

// LoadFromEnvVars reads all env vars.
func (rc *RESTControllerConfiguration) LoadFromEnvVars() error {
	return envconfig.Process("", rc)
}
