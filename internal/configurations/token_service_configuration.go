package configurations

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// TokenVerifierHMAC validates access tokens signed with the shared HMAC secret.
	TokenVerifierHMAC = "hmac"
	// TokenVerifierOIDC validates access tokens against the configured OIDC provider.
	TokenVerifierOIDC = "oidc"
)

// TokenServiceConfiguration defines a struct with required environment variables.
type TokenServiceConfiguration struct {
	Verifier       string        `envconfig:"TOKEN_VERIFIER" default:"hmac"`
	UserIDClaim    string        `envconfig:"USER_ID_CLAIM" default:"email"`
	UserNameClaim  string        `envconfig:"USER_NAME_CLAIM" default:"name"`
	HMACSecret     []byte        `envconfig:"HMAC_SECRET" default:""`
	UserJWTExpires time.Duration `envconfig:"USER_JWT_EXPIRES_AT" default:"24h"`
}

// LoadFromEnvVars from the Token Service.
func (tc *TokenServiceConfiguration) LoadFromEnvVars() error {
	if err := envconfig.Process("", tc); err != nil {
		return err
	}

	if tc.Verifier != TokenVerifierHMAC && tc.Verifier != TokenVerifierOIDC {
		return fmt.Errorf("unknown token verifier: %s", tc.Verifier)
	}

	return nil
}
