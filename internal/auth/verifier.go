package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/notepadhq/notepad-backend/internal/model"
)

// Verifier confirms that a bearer credential represents a live session with
// the external identity provider.
type Verifier interface {
	// Verify returns the identity behind the token, ErrUnauthenticated when
	// the provider rejects it, or ErrUpstreamUnavailable when the provider
	// cannot be reached in time.
	Verify(ctx context.Context, token string) (*model.User, error)
}

// SupabaseVerifier validates session tokens against the Supabase GoTrue
// user-lookup endpoint.
type SupabaseVerifier struct {
	client *resty.Client
	apiKey string
}

// NewSupabaseVerifier creates a verifier for the given Supabase project.
// The service API key is sent alongside the user's token on every lookup.
func NewSupabaseVerifier(baseURL, apiKey string, timeout time.Duration) *SupabaseVerifier {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &SupabaseVerifier{client: c, apiKey: apiKey}
}

func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token: %w", ErrUnauthenticated)
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("apikey", v.apiKey).
		Get("/auth/v1/user")
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("identity lookup: %w", ErrUpstreamUnavailable)
		}
		return nil, fmt.Errorf("identity lookup: %v: %w", err, ErrUpstreamUnavailable)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("identity provider status %d: %w", resp.StatusCode(), ErrUnauthenticated)
	}

	var user model.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, fmt.Errorf("malformed identity response: %w", ErrUnauthenticated)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("identity response missing id: %w", ErrUnauthenticated)
	}
	return &user, nil
}
