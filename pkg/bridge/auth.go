package bridge

import (
	"crypto/subtle"
	"strings"
)

/*
Credentials carries the transport-level credentials of an inbound request:
the Authorization bearer value and the X-API-Key fallback header.
*/
type Credentials struct {
	Bearer string
	APIKey string
}

// NewCredentials extracts the bearer token from a raw Authorization header
// value and pairs it with the fallback header carrying the secret directly.
func NewCredentials(authorization string, apiKey string) Credentials {
	creds := Credentials{APIKey: apiKey}

	if strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
		creds.Bearer = strings.TrimSpace(authorization[7:])
	}

	return creds
}

// authorize accepts the request when either presented credential matches the
// configured secret. An empty secret disables authentication entirely.
func authorize(secret string, creds Credentials) bool {
	if secret == "" {
		return true
	}

	if constantTimeEquals(creds.Bearer, secret) {
		return true
	}

	return constantTimeEquals(creds.APIKey, secret)
}

// constantTimeEquals never short-circuits on byte inequality.
// subtle.ConstantTimeCompare rejects length mismatches up front, which leaks
// only the length class of the secret.
func constantTimeEquals(presented string, secret string) bool {
	if presented == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}
