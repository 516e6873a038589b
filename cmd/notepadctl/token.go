package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// runToken exchanges email/password for a session token via the GoTrue
// password grant. Useful for driving the API from scripts during development.
func runToken(supabaseURL, apiKey, email, password string, out io.Writer) error {
	resp, err := newClient(supabaseURL).R().
		SetHeader("apikey", apiKey).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/v1/token")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("token request: status %d: %s", resp.StatusCode(), resp.String())
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return fmt.Errorf("token response missing access_token")
	}
	fmt.Fprintln(out, body.AccessToken)
	return nil
}
