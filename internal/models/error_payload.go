package models

import "fmt"

// ErrorPayload defines the error body returned by the search API on a failed request.
// The message is set at construction time and never reassigned.
type ErrorPayload struct {
	message *string
}

// NewErrorPayload creates a new ErrorPayload carrying the given message verbatim.
// The zero value is a payload without a message.
func NewErrorPayload(message string) ErrorPayload {
	return ErrorPayload{message: &message}
}

// ErrorPayloadFromPayload creates a new ErrorPayload from a generically decoded JSON
// object. A missing "message" key, or a JSON null, yields a payload without a message;
// a present value of any other type than string is a type mismatch.
func ErrorPayloadFromPayload(payload map[string]interface{}) (ErrorPayload, error) {
	raw, ok := payload["message"]
	if !ok || raw == nil {
		return ErrorPayload{}, nil
	}

	message, ok := raw.(string)
	if !ok {
		return ErrorPayload{}, fmt.Errorf("search api error payload: \"message\" is %T, not a string", raw)
	}

	return NewErrorPayload(message), nil
}

// Message returns the stored message and whether one is present.
func (e ErrorPayload) Message() (string, bool) {
	if e.message == nil {
		return "", false
	}
	return *e.message, true
}

// String renders the payload for diagnostics; an absent message renders as <nil>.
func (e ErrorPayload) String() string {
	if e.message == nil {
		return "search api error: message: <nil>"
	}
	return fmt.Sprintf("search api error: message: %s", *e.message)
}
