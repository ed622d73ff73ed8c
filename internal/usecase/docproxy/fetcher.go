package docproxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"sanctions-watch/internal/observability/metrics"
	"sanctions-watch/internal/resilience/circuitbreaker"
)

// maxDocumentBytes bounds an upstream document body. Larger responses are
// truncated fetches treated as errors rather than streamed to the client.
const maxDocumentBytes = 50 << 20

// Result is a fetched upstream document ready to be forwarded to the client.
type Result struct {
	Body        []byte
	ContentType string
}

// Fetcher performs the outbound document GET. Zero value is not usable;
// construct with NewFetcher.
type Fetcher struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with the given per-request timeout.
// Outbound calls are limited to a small steady rate so a crawler hitting the
// proxy cannot turn this service into a load generator against document
// hosts.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		breaker: circuitbreaker.New(circuitbreaker.DocumentFetchConfig()),
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

// Fetch retrieves the document at url and infers its content type.
// A non-200 upstream status yields an *UpstreamError carrying the status
// code; transport failures and an open circuit yield plain errors. No
// retries are attempted.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	if url == "" {
		return nil, ErrNoSourceURL
	}

	if err := f.limiter.Wait(ctx); err != nil {
		metrics.RecordDocumentFetch("rejected", 0)
		return nil, fmt.Errorf("wait for fetch slot: %w", err)
	}

	start := time.Now()
	v, err := f.breaker.Execute(func() (any, error) {
		return f.doFetch(ctx, url)
	})
	duration := time.Since(start)
	if err != nil {
		if _, ok := err.(*UpstreamError); ok {
			metrics.RecordDocumentFetch("upstream_error", duration)
		} else {
			metrics.RecordDocumentFetch("transport_error", duration)
		}
		return nil, err
	}

	metrics.RecordDocumentFetch("success", duration)
	return v.(*Result), nil
}

func (f *Fetcher) doFetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build document request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read document body: %w", err)
	}

	return &Result{
		Body:        body,
		ContentType: inferContentType(url, resp.Header.Get("Content-Type")),
	}, nil
}

// inferContentType returns the upstream content type, forcing
// application/pdf for PDF-looking URLs whose upstream type is not HTML-like.
// Document hosts frequently serve PDFs as application/octet-stream, which
// browsers refuse to render inline.
func inferContentType(url, upstream string) string {
	if strings.Contains(strings.ToLower(url), ".pdf") &&
		!strings.Contains(strings.ToLower(upstream), "html") {
		return "application/pdf"
	}
	return upstream
}
