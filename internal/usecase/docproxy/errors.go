// Package docproxy fetches externally hosted documents on behalf of the
// document proxy endpoint. The fetch is the only outbound network call in
// the system and is guarded by a timeout, an outbound rate limiter, and a
// circuit breaker.
package docproxy

import (
	"errors"
	"fmt"
)

// ErrNoSourceURL indicates the located document carries no upstream URL to
// fetch from.
var ErrNoSourceURL = errors.New("document has no source URL")

// UpstreamError indicates the upstream host answered with a non-200 status.
// The status code is surfaced to the caller so the proxy response can mirror
// it.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
