package auth

import "errors"

var (
	// ErrUnauthenticated is returned when the credential is missing, empty
	// or rejected by the identity provider.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUpstreamUnavailable is returned when the identity provider cannot
	// be reached within the configured timeout.
	ErrUpstreamUnavailable = errors.New("identity provider unavailable")
)
