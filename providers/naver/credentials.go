package naver

import (
	"fmt"
	"os"
)

// Environment variable names read by [CredentialsFromEnv].
const (
	EnvClientID     = "NAVER_CLIENT_ID"
	EnvClientSecret = "NAVER_CLIENT_SECRET"
)

// Credentials holds the Naver application client ID and client secret.
// The fields are unexported and the type implements [fmt.Stringer] and
// [fmt.GoStringer] with redacted output, so the secrets cannot leak through
// logs, error messages, or any fmt verb.
type Credentials struct {
	id     string
	secret string
}

// NewCredentials returns Credentials carrying the given client ID and secret.
// Validation happens in [NewClient]; empty values are allowed here so callers
// can build the value first and fail at construction.
func NewCredentials(clientID, clientSecret string) Credentials {
	return Credentials{id: clientID, secret: clientSecret}
}

// CredentialsFromEnv reads NAVER_CLIENT_ID and NAVER_CLIENT_SECRET from the
// environment. It returns an error wrapping [ErrMissingCredentials] when
// either variable is unset or empty. Call this from the composition root;
// the client itself never touches the environment.
func CredentialsFromEnv() (Credentials, error) {
	id := os.Getenv(EnvClientID)
	secret := os.Getenv(EnvClientSecret)
	if id == "" || secret == "" {
		return Credentials{}, fmt.Errorf("%s and %s environment variables must be set: %w",
			EnvClientID, EnvClientSecret, ErrMissingCredentials)
	}
	return NewCredentials(id, secret), nil
}

// set reports whether both parts of the credentials are present.
func (c Credentials) set() bool {
	return c.id != "" && c.secret != ""
}

// String returns a redacted placeholder instead of the secrets.
func (c Credentials) String() string {
	return "naver.Credentials(REDACTED)"
}

// GoString returns the same redacted placeholder, covering the %#v verb,
// which would otherwise print unexported fields.
func (c Credentials) GoString() string {
	return c.String()
}
