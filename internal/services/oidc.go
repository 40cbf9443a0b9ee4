package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/ydataai/go-core/pkg/common/logging"

	"github.com/ydataai/search-service/internal/configurations"
	searchErrors "github.com/ydataai/search-service/internal/errors"
	"github.com/ydataai/search-service/internal/models"
)

// OIDCTokenService defines the OIDC token service struct.
type OIDCTokenService struct {
	configuration      configurations.OIDCVerifierConfiguration
	tokenConfiguration configurations.TokenServiceConfiguration
	provider           *oidc.Provider
	verifier           *oidc.IDTokenVerifier
	logger             logging.Logger
}

// NewOIDCTokenService creates a new OIDC token service struct.
func NewOIDCTokenService(logger logging.Logger,
	configuration configurations.OIDCVerifierConfiguration,
	tokenConfiguration configurations.TokenServiceConfiguration) *OIDCTokenService {

	return &OIDCTokenService{
		configuration:      configuration,
		tokenConfiguration: tokenConfiguration,
		logger:             logger,
	}
}

// StartSetup initializes setup for the OIDC Provider.
func (ots *OIDCTokenService) StartSetup() {
	ctx := context.Background()

	// make sure it is available
	ots.isAvailable(ctx)

	oidcConfig := &oidc.Config{
		ClientID: ots.configuration.ClientID,
	}
	ots.verifier = ots.provider.Verifier(oidcConfig)
}

// Decode verifies the token against the OIDC Provider and returns the claims.
func (ots *OIDCTokenService) Decode(ctx context.Context, tokenString string) (models.UserInfo, error) {
	if ots.verifier == nil {
		return models.UserInfo{}, searchErrors.ErrorVerifierNotReady
	}

	idToken, err := ots.verifier.Verify(ctx, tokenString)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("failed to verify ID Token. Error: %v", err)
	}

	claims := map[string]interface{}{}
	if err := idToken.Claims(&claims); err != nil {
		return models.UserInfo{}, fmt.Errorf("failed to read the ID Token claims. Error: %v", err)
	}

	uid, ok := claims[ots.tokenConfiguration.UserIDClaim].(string)
	if !ok {
		return models.UserInfo{}, fmt.Errorf("token has no %q claim", ots.tokenConfiguration.UserIDClaim)
	}

	name, _ := claims[ots.tokenConfiguration.UserNameClaim].(string)

	return models.UserInfo{
		UID:  uid,
		Name: name,
	}, nil
}

func (ots *OIDCTokenService) isAvailable(ctx context.Context) {
	var err error

	for {
		ots.provider, err = oidc.NewProvider(ctx, ots.configuration.OIDProviderURL)
		if err == nil {
			break
		}
		ots.logger.Errorf("OIDC provider setup failed, retrying in 10 seconds: %v", err)
		time.Sleep(10 * time.Second)
	}
}
