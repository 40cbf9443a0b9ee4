package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPayloadFromPayload(t *testing.T) {
	testCases := []struct {
		body    string
		message string
		present bool
		fails   bool
	}{
		{
			body:    `{"message": "API rate limit exceeded"}`,
			message: "API rate limit exceeded",
			present: true,
		},
		{
			body:    `{"message": "Validation Failed", "documentation_url": "https://docs.github.com/rest/search"}`,
			message: "Validation Failed",
			present: true,
		},
		{
			body:    `{"message": ""}`,
			message: "",
			present: true,
		},
		{
			body:    `{}`,
			present: false,
		},
		{
			body:    `{"message": null}`,
			present: false,
		},
		{
			body:  `{"message": 42}`,
			fails: true,
		},
		{
			body:  `{"message": true}`,
			fails: true,
		},
		{
			body:  `{"message": {"text": "nested"}}`,
			fails: true,
		},
		{
			body:  `{"message": ["a", "b"]}`,
			fails: true,
		},
	}

	for _, tt := range testCases {
		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(tt.body), &payload), tt.body)

		ep, err := ErrorPayloadFromPayload(payload)

		if tt.fails {
			assert.Errorf(t, err, "body %s must not coerce silently", tt.body)
			continue
		}

		assert.NoError(t, err, tt.body)
		message, present := ep.Message()
		assert.Equal(t, tt.present, present, tt.body)
		assert.Equal(t, tt.message, message, tt.body)
	}
}

func TestErrorPayloadString(t *testing.T) {
	ep := NewErrorPayload("Not Found")
	assert.Contains(t, ep.String(), "message: Not Found")

	// The zero value renders its absent message without blowing up.
	var empty ErrorPayload
	assert.Contains(t, empty.String(), "message: <nil>")

	// fmt drives String through the Stringer interface.
	assert.Contains(t, fmt.Sprintf("%v", ep), "message: Not Found")
}

func TestErrorPayloadRoundTrip(t *testing.T) {
	const message = "Must authenticate to access this API."

	direct := NewErrorPayload(message)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(`{"message": "`+message+`"}`), &payload))
	decoded, err := ErrorPayloadFromPayload(payload)
	assert.NoError(t, err)

	directMessage, directPresent := direct.Message()
	decodedMessage, decodedPresent := decoded.Message()
	assert.True(t, directPresent)
	assert.True(t, decodedPresent)
	assert.Equal(t, directMessage, decodedMessage)
}
