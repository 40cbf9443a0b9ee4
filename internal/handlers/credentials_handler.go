package handlers

import (
	"net/http"
)

const (
	foundMsg    = "[✔️] token found in"
	notFoundMsg = "[✖️] token not found in"
)

// CredentialsHandler defines an interface for extracting credentials from a request.
type CredentialsHandler interface {
	Extract(r *http.Request) (string, error)
}
