package assistant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestPollinationsClient_ReturnsTrimmedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  Hello there!\n"))
	}))
	defer srv.Close()

	c := NewPollinationsClient(srv.URL, 2*time.Second)
	got, err := c.Complete(context.Background(), "hi")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "Hello there!" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestPollinationsClient_EncodesPromptIntoPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	prompt := "System: hi\nUser: a/b?\nAssistant:"
	c := NewPollinationsClient(srv.URL, 2*time.Second)
	if _, err := c.Complete(context.Background(), prompt); err != nil {
		t.Fatalf("complete: %v", err)
	}
	decoded, err := url.PathUnescape(gotPath)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if decoded != "/"+prompt {
		t.Fatalf("prompt not round-tripped through the path: %q", decoded)
	}
}

func TestPollinationsClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewPollinationsClient(srv.URL, 2*time.Second)
	_, err := c.Complete(context.Background(), "hi")
	var statusErr *UpstreamStatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadGateway {
		t.Fatalf("expected UpstreamStatusError(502), got %v", err)
	}
}

func TestPollinationsClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewPollinationsClient(srv.URL, 50*time.Millisecond)
	_, err := c.Complete(context.Background(), "hi")
	if !errors.Is(err, ErrCompletionTimeout) {
		t.Fatalf("expected ErrCompletionTimeout, got %v", err)
	}
}

func TestPollinationsClient_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewPollinationsClient(srv.URL, 2*time.Second)
	_, err := c.Complete(ctx, "hi")
	if !errors.Is(err, ErrCompletionTimeout) {
		t.Fatalf("expected ErrCompletionTimeout for canceled context, got %v", err)
	}
}
