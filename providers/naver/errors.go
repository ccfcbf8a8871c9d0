package naver

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the client. Discriminate with [errors.Is].
var (
	// ErrMissingCredentials is returned by NewClient when either the client
	// ID or the client secret is empty, and by CredentialsFromEnv when the
	// environment variables are not set.
	ErrMissingCredentials = errors.New("naver credentials are not set")

	// ErrEmptyQuery is returned before any network call when the search
	// query is empty or blank.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrInvalidSort is returned before any network call when the sort
	// order is not one of the supported values.
	ErrInvalidSort = errors.New("invalid sort order")

	// ErrInvalidResponse wraps JSON decode failures of a 200 response body.
	ErrInvalidResponse = errors.New("invalid response body")
)

// StatusError reports a non-200 response from the search API. Code is the
// HTTP status code; Reason, when set, is the status line text. Retrieve it
// with [errors.As] to branch on the code.
type StatusError struct {
	Code   int
	Reason string
}

// Error renders the code-only form "Error Code: 400" when Reason is empty
// and "Error 400: Bad Request" when it is set.
func (e *StatusError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Error Code: %d", e.Code)
	}
	return fmt.Sprintf("Error %d: %s", e.Code, e.Reason)
}
