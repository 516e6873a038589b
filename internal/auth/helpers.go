package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// ExtractBearerToken extracts the session token from the Authorization header.
// Returns the token or an error if the header is missing or malformed.
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header: %w", ErrUnauthenticated)
	}

	// Expect "Bearer <token>" format
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid Authorization header format, expected 'Bearer <token>': %w", ErrUnauthenticated)
	}
	if strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("empty bearer token: %w", ErrUnauthenticated)
	}

	return parts[1], nil
}
