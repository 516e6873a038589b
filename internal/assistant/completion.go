package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// CompletionClient fetches a raw text completion for a prompt.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrCompletionTimeout is returned when the completion endpoint does not
// answer within the configured bound.
var ErrCompletionTimeout = errors.New("completion request timed out")

// UpstreamStatusError is returned for non-200 completion responses.
type UpstreamStatusError struct {
	Status int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("completion endpoint status %d", e.Status)
}

// PollinationsClient talks to a text.pollinations.ai style endpoint: the
// prompt is percent-encoded into the URL path of a GET request and the
// response body is the raw completion text, not JSON.
type PollinationsClient struct {
	client *resty.Client
}

func NewPollinationsClient(baseURL string, timeout time.Duration) *PollinationsClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &PollinationsClient{client: c}
}

func (p *PollinationsClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(url.PathEscape(prompt))
	if err != nil {
		var ue *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ue) && ue.Timeout()) {
			return "", ErrCompletionTimeout
		}
		return "", fmt.Errorf("completion transport: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &UpstreamStatusError{Status: resp.StatusCode()}
	}
	return strings.TrimSpace(resp.String()), nil
}
