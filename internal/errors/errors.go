package errors

import "errors"

var (
	// ErrorTokenNotFound is returned when no access token is present in a request.
	ErrorTokenNotFound = errors.New("token not found")
	// ErrorTokenMalformed is returned when a token is not a JWT at all.
	ErrorTokenMalformed = errors.New("token is malformed")
	// ErrorTokenExpired is returned when a token is valid but past its expiration.
	ErrorTokenExpired = errors.New("token is expired")
	// ErrorTokenInactive is returned when a token is not valid yet.
	ErrorTokenInactive = errors.New("token is not active yet")
	// ErrorTokenSignatureInvalid is returned when the token signature does not verify.
	ErrorTokenSignatureInvalid = errors.New("token signature is invalid")
	// ErrorTokenContainsInvalidSegments is returned when a token cannot be split into
	// its header, payload and signature segments.
	ErrorTokenContainsInvalidSegments = errors.New("token contains an invalid number of segments")
	// ErrorVerifierNotReady is returned when token verification is attempted before
	// the verifier finished its provider setup.
	ErrorVerifierNotReady = errors.New("token verifier is not ready")

	// ErrorEmptyQuery is returned when a search is requested without a query.
	ErrorEmptyQuery = errors.New("search query cannot be empty")
)

// IsTokenNotFound returns true if the specified error is an ErrorTokenNotFound.
func IsTokenNotFound(err error) bool {
	return errors.Is(err, ErrorTokenNotFound)
}

// IsEmptyQuery returns true if the specified error is an ErrorEmptyQuery.
func IsEmptyQuery(err error) bool {
	return errors.Is(err, ErrorEmptyQuery)
}
