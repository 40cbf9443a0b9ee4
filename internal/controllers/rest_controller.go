package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ydataai/go-core/pkg/common/logging"
	"github.com/ydataai/go-core/pkg/common/server"

	"github.com/ydataai/search-service/internal/clients"
	"github.com/ydataai/search-service/internal/configurations"
	searchErrors "github.com/ydataai/search-service/internal/errors"
	"github.com/ydataai/search-service/internal/handlers"
	"github.com/ydataai/search-service/internal/models"
	"github.com/ydataai/search-service/internal/services"
)

// userContextKey is where the authenticated identity is stored in the request context.
const userContextKey = "user"

// RESTController defines rest controller.
type RESTController struct {
	configuration configurations.RESTControllerConfiguration
	searchService services.SearchService
	credentials   []handlers.CredentialsHandler
	tokenService  services.TokenService
	logger        logging.Logger
}

// NewRESTController initializes rest controller.
func NewRESTController(logger logging.Logger,
	configuration configurations.RESTControllerConfiguration,
	searchService services.SearchService,
	credentials []handlers.CredentialsHandler,
	tokenService services.TokenService) RESTController {

	return RESTController{
		configuration: configuration,
		searchService: searchService,
		credentials:   credentials,
		tokenService:  tokenService,
		logger:        logger,
	}
}

// Boot registers the HTTP routes.
func (rc RESTController) Boot(s *server.Server) {
	rc.register(s.Router)
}

func (rc RESTController) register(router *gin.Engine) {
	searchGroup := router.Group("/")
	searchGroup.Use(rc.ensureRequestID())
	if rc.configuration.AuthEnabled {
		searchGroup.Use(rc.authenticate())
	}

	searchGroup.GET(rc.configuration.SearchURL, rc.Search)
	searchGroup.GET(rc.configuration.RecentQueriesURL, rc.RecentQueries)
}

// Search handles a repository search request.
func (rc RESTController) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), rc.configuration.HTTPRequestTimeout)
	defer cancel()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "0"))

	request := models.SearchRequest{
		Query:   c.Query("q"),
		Page:    page,
		PerPage: perPage,
	}

	response, err := rc.searchService.Search(ctx, request)
	if err != nil {
		rc.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RecentQueries handles a query history request.
func (rc RESTController) RecentQueries(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), rc.configuration.HTTPRequestTimeout)
	defer cancel()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(rc.configuration.RecentLimitDefault)))
	if err != nil || limit < 1 {
		limit = rc.configuration.RecentLimitDefault
	}
	if limit > rc.configuration.RecentLimitMax {
		limit = rc.configuration.RecentLimitMax
	}

	queries, err := rc.searchService.RecentQueries(ctx, limit)
	if err != nil {
		rc.logger.Errorf("failed to list the recent queries. Error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message:   "an unexpected error occurred",
			Timestamp: time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, models.RecentQueriesResponse{Queries: queries})
}

// errorResponse translates a search failure into an HTTP response.
func (rc RESTController) errorResponse(c *gin.Context, err error) {
	timestamp := time.Now()

	if searchErrors.IsEmptyQuery(err) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message:   err.Error(),
			Timestamp: timestamp,
		})
		return
	}

	// Failures reported by the search API keep their status code and message.
	apiErr := &clients.APIError{}
	if errors.As(err, &apiErr) {
		rc.logger.Warnf("search API error: %v", apiErr)

		message, ok := apiErr.Payload.Message()
		if !ok {
			message = http.StatusText(apiErr.StatusCode)
		}
		c.JSON(apiErr.StatusCode, models.ErrorResponse{
			Message:   message,
			Timestamp: timestamp,
		})
		return
	}

	rc.logger.Errorf("failed to handle the search request. Error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Message:   "an unexpected error occurred",
		Timestamp: timestamp,
	})
}

// ensureRequestID tags every request with an identifier.
func (rc RESTController) ensureRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(rc.configuration.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(rc.configuration.RequestIDHeader, requestID)
		c.Next()
	}
}

// authenticate extracts the credentials and validates the access token.
func (rc RESTController) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := rc.extractToken(c.Request)
		if err != nil {
			rc.unauthorized(c, err)
			return
		}

		userInfo, err := rc.tokenService.Decode(c.Request.Context(), token)
		if err != nil {
			rc.unauthorized(c, err)
			return
		}

		rc.logger.Infof("authenticated user %q", userInfo.UID)
		c.Set(userContextKey, userInfo)
		c.Next()
	}
}

// extractToken runs through the credentials handlers in order of preference.
func (rc RESTController) extractToken(r *http.Request) (string, error) {
	for _, handler := range rc.credentials {
		token, err := handler.Extract(r)
		if err == nil {
			return token, nil
		}
	}
	return "", searchErrors.ErrorTokenNotFound
}

func (rc RESTController) unauthorized(c *gin.Context, err error) {
	rc.logger.Infof("unauthorized request: %v", err)
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Message:   err.Error(),
		Timestamp: time.Now(),
	})
}
