package configurations

import (
	"github.com/kelseyhightower/envconfig"
)

// OIDCVerifierConfiguration defines a struct with required environment variables.
type OIDCVerifierConfiguration struct {
	OIDProviderURL string `envconfig:"OIDPROVIDER_URL"`
	ClientID       string `envconfig:"CLIENT_ID"`
}

// LoadFromEnvVars reads all env vars required for the OIDC verifier.
func (oc *OIDCVerifierConfiguration) LoadFromEnvVars() error {
	return envconfig.Process("", oc)
}
