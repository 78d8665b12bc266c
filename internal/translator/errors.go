package translator

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned by New when a required credential is missing.
	ErrConfiguration = errors.New("translator: invalid configuration")

	// ErrInvalidInput is returned before any network call when the input cannot be sent.
	ErrInvalidInput = errors.New("translator: invalid input")

	// ErrEmptyResponse is returned when the service answers 200 with no translations.
	ErrEmptyResponse = errors.New("translator: remote service returned no translations")
)

// RemoteError describes a failed round trip to the translation service.
// StatusCode is zero when the request never produced a response.
type RemoteError struct {
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("translator: remote call failed: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("translator: remote service status %d: %v: %s", e.StatusCode, e.Err, e.Body)
	}
	return fmt.Sprintf("translator: remote service status %d: %s", e.StatusCode, e.Body)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// newStatusError builds a RemoteError for a non-200 response, pulling the
// service's error message out of the body when it has the usual shape.
func newStatusError(status int, body []byte) *RemoteError {
	e := &RemoteError{StatusCode: status, Body: string(body)}

	var payload struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Message = payload.Error.Message
	}
	return e
}
