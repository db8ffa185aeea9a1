package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestFetcherClassifiesStatus tests that HTTP status codes map to the
// right outcome kinds.
func TestFetcherClassifiesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   OutcomeKind
	}{
		{name: "200 is a success", status: http.StatusOK, want: OutcomeSuccess},
		{name: "204 is a success", status: http.StatusNoContent, want: OutcomeSuccess},
		{name: "404 is a permanent failure", status: http.StatusNotFound, want: OutcomePermanent},
		{name: "403 is a permanent failure", status: http.StatusForbidden, want: OutcomePermanent},
		{name: "410 is a permanent failure", status: http.StatusGone, want: OutcomePermanent},
		{name: "429 is retryable despite being 4xx", status: http.StatusTooManyRequests, want: OutcomeRetryable},
		{name: "500 is retryable", status: http.StatusInternalServerError, want: OutcomeRetryable},
		{name: "503 is retryable", status: http.StatusServiceUnavailable, want: OutcomeRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			fetcher := NewFetcher(server.Client())
			outcome := fetcher.Fetch(context.Background(), server.URL)

			if outcome.Kind != tt.want {
				t.Errorf("expected outcome %v, got %v (reason: %s)", tt.want, outcome.Kind, outcome.Reason)
			}
			if outcome.StatusCode != tt.status {
				t.Errorf("expected status code %d, got %d", tt.status, outcome.StatusCode)
			}
		})
	}
}

// TestFetcherReadsBody tests that successful fetches capture the body
// and content type.
func TestFetcherReadsBody(t *testing.T) {
	t.Parallel()

	const page = `<html><head><title>Hello</title></head><body></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(page)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client())
	outcome := fetcher.Fetch(context.Background(), server.URL)

	if outcome.Kind != OutcomeSuccess {
		t.Fatalf("expected success, got %v (reason: %s)", outcome.Kind, outcome.Reason)
	}
	if string(outcome.Body) != page {
		t.Errorf("expected body %q, got %q", page, string(outcome.Body))
	}
	if !strings.HasPrefix(outcome.ContentType, "text/html") {
		t.Errorf("expected text/html content type, got %q", outcome.ContentType)
	}
}

// TestFetcherTruncatesBody tests that response bodies are capped at the
// configured limit.
func TestFetcherTruncatesBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(strings.Repeat("x", 10_000))); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), WithMaxBodySize(1024))
	outcome := fetcher.Fetch(context.Background(), server.URL)

	if outcome.Kind != OutcomeSuccess {
		t.Fatalf("expected success, got %v", outcome.Kind)
	}
	if len(outcome.Body) != 1024 {
		t.Errorf("expected body truncated to 1024 bytes, got %d", len(outcome.Body))
	}
}

// TestFetcherFollowsRedirects tests that redirects are followed and the
// final URL is reported.
func TestFetcherFollowsRedirects(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte("<html></html>")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := NewFetcher(server.Client())
	outcome := fetcher.Fetch(context.Background(), server.URL+"/old")

	if outcome.Kind != OutcomeSuccess {
		t.Fatalf("expected success after redirect, got %v (reason: %s)", outcome.Kind, outcome.Reason)
	}
	if outcome.StatusCode != http.StatusOK {
		t.Errorf("expected final status 200, got %d", outcome.StatusCode)
	}
	if want := server.URL + "/new"; outcome.FinalURL != want {
		t.Errorf("expected final URL %q, got %q", want, outcome.FinalURL)
	}
}

// TestFetcherNetworkError tests that unreachable servers produce a
// retryable outcome instead of an error.
func TestFetcherNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	fetcher := NewFetcher(&http.Client{Timeout: time.Second})
	outcome := fetcher.Fetch(context.Background(), addr)

	if outcome.Kind != OutcomeRetryable {
		t.Errorf("expected retryable outcome for network error, got %v", outcome.Kind)
	}
	if outcome.StatusCode != 0 {
		t.Errorf("expected status code 0 for network error, got %d", outcome.StatusCode)
	}
	if outcome.Reason == "" {
		t.Error("expected a reason for the network error")
	}
}

// TestFetcherInvalidURL tests that an unparseable URL is a permanent
// failure.
func TestFetcherInvalidURL(t *testing.T) {
	t.Parallel()

	fetcher := NewFetcher(&http.Client{Timeout: time.Second})
	outcome := fetcher.Fetch(context.Background(), "http://exa mple.com/")

	if outcome.Kind != OutcomePermanent {
		t.Errorf("expected permanent outcome for invalid URL, got %v", outcome.Kind)
	}
}

// TestFetcherSendsHeaders tests that the User-Agent and custom headers
// reach the server.
func TestFetcherSendsHeaders(t *testing.T) {
	t.Parallel()

	var gotUA, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(),
		WithUserAgent("seoscan-test/1.0"),
		WithHeaders(map[string]string{"Authorization": "Bearer token123"}),
	)
	outcome := fetcher.Fetch(context.Background(), server.URL)

	if outcome.Kind != OutcomeSuccess {
		t.Fatalf("expected success, got %v", outcome.Kind)
	}
	if gotUA != "seoscan-test/1.0" {
		t.Errorf("expected custom User-Agent, got %q", gotUA)
	}
	if gotAuth != "Bearer token123" {
		t.Errorf("expected Authorization header, got %q", gotAuth)
	}
}

// TestFetcherContextCancellation tests that a canceled context stops
// the fetch and surfaces through ctx.Err, not through the outcome.
func TestFetcherContextCancellation(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	fetcher := NewFetcher(server.Client())
	outcome := fetcher.Fetch(ctx, server.URL)

	if outcome.Kind != OutcomeRetryable {
		t.Errorf("expected retryable outcome for canceled fetch, got %v", outcome.Kind)
	}
	if ctx.Err() == nil {
		t.Error("expected context error after cancellation")
	}
}

// TestOutcomeKindString tests the human-readable outcome names.
func TestOutcomeKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind OutcomeKind
		want string
	}{
		{OutcomeSuccess, "success"},
		{OutcomeRetryable, "retryable"},
		{OutcomePermanent, "permanent"},
		{OutcomeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("OutcomeKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
