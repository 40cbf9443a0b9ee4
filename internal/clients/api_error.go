package clients

import (
	"fmt"
	"net/http"

	"github.com/ydataai/search-service/internal/models"
)

// APIError defines an error response from the search API.
type APIError struct {
	StatusCode int
	Payload    models.ErrorPayload
}

// Error returns the API message when the payload carries one, falling
// back to the standard status text.
func (e *APIError) Error() string {
	if message, ok := e.Payload.Message(); ok {
		return fmt.Sprintf("search API responded with %d: %s", e.StatusCode, message)
	}
	return fmt.Sprintf("search API responded with %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}
