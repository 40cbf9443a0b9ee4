package handlers

import (
	"net/http"
	"strings"

	"github.com/ydataai/go-core/pkg/common/logging"

	"github.com/ydataai/search-service/internal/configurations"
	searchErrors "github.com/ydataai/search-service/internal/errors"
)

// HeaderCredentialsHandler defines a HeaderCredentialsHandler struct.
type HeaderCredentialsHandler struct {
	restCtrlConfig configurations.RESTControllerConfiguration
	logger         logging.Logger
}

// NewHeaderCredentialsHandler defines a new HeaderCredentialsHandler struct.
func NewHeaderCredentialsHandler(logger logging.Logger,
	restCtrlConfig configurations.RESTControllerConfiguration) CredentialsHandler {

	return &HeaderCredentialsHandler{
		restCtrlConfig: restCtrlConfig,
		logger:         logger,
	}
}

// Extract is an interface that extracts credential information from the header.
func (ah *HeaderCredentialsHandler) Extract(r *http.Request) (string, error) {
	token, err := getBearerToken(r.Header.Get(ah.restCtrlConfig.AuthHeader))
	if err != nil {
		ah.logger.Infof("%s %s header", notFoundMsg, ah.restCtrlConfig.AuthHeader)
		return "", err
	}

	ah.logger.Infof("%s %s header", foundMsg, ah.restCtrlConfig.AuthHeader)
	return token, nil
}

// getBearerToken strips the Bearer scheme from an Authorization value.
// Values using any other scheme are passed through untouched.
func getBearerToken(value string) (string, error) {
	if strings.HasPrefix(value, "Bearer") {
		value = strings.TrimSpace(strings.TrimPrefix(value, "Bearer"))
	}
	if value == "" {
		return "", searchErrors.ErrorTokenNotFound
	}
	return value, nil
}
