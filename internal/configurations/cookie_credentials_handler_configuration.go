package configurations

import (
	"github.com/kelseyhightower/envconfig"
)

// CookieCredentialsHandlerConfiguration defines a struct with required environment variables.
type CookieCredentialsHandlerConfiguration struct {
	AccessTokenCookieName string `envconfig:"ACCESS_TOKEN_COOKIE_NAME" default:"access_token"`
}

// LoadFromEnvVars reads all env vars required for the cookie credentials handler.
func (cc *CookieCredentialsHandlerConfiguration) LoadFromEnvVars() error {
	return envconfig.Process("", cc)
}
