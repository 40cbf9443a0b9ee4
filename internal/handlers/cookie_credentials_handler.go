package handlers

import (
	"net/http"

	"github.com/ydataai/go-core/pkg/common/logging"

	"github.com/ydataai/search-service/internal/configurations"
	searchErrors "github.com/ydataai/search-service/internal/errors"
)

// CookieCredentialsHandler defines a CookieCredentialsHandler struct.
type CookieCredentialsHandler struct {
	configuration configurations.CookieCredentialsHandlerConfiguration
	logger        logging.Logger
}

// NewCookieCredentialsHandler defines a new CookieCredentialsHandler struct.
func NewCookieCredentialsHandler(logger logging.Logger,
	configuration configurations.CookieCredentialsHandlerConfiguration) CredentialsHandler {

	return &CookieCredentialsHandler{
		configuration: configuration,
		logger:        logger,
	}
}

// Extract is an interface that extracts credential information from the cookie.
func (ac *CookieCredentialsHandler) Extract(r *http.Request) (string, error) {
	token, err := r.Cookie(ac.configuration.AccessTokenCookieName)
	if err != nil {
		ac.logger.Infof("%s cookie", notFoundMsg)
		return "", searchErrors.ErrorTokenNotFound
	}

	ac.logger.Infof("%s cookie", foundMsg)
	return token.Value, nil
}
