// Package document provides the HTTP handler for the document proxy
// endpoint, which stands in for externally hosted documents so their
// original source URLs are never exposed to clients.
package document

import (
	"errors"
	"log/slog"
	"net/http"

	"sanctions-watch/internal/handler/http/respond"
	"sanctions-watch/internal/observability/logging"
	"sanctions-watch/internal/usecase/dataset"
	"sanctions-watch/internal/usecase/docproxy"
)

// ProxyHandler serves GET /proxy/document/{reference}: it locates the owning
// document across the collection, fetches the upstream URL, and forwards the
// body with an inferred content type and restrictive framing headers.
type ProxyHandler struct {
	Svc     *dataset.Service
	Fetcher *docproxy.Fetcher
	Logger  *slog.Logger
}

func (h ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	reference := r.PathValue("reference")
	if reference == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("document reference is required"))
		return
	}

	doc, owner, err := h.Svc.FindDocument(ctx, reference)
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}

	result, err := h.Fetcher.Fetch(ctx, doc.SourceURL)
	if err != nil {
		var upstream *docproxy.UpstreamError
		switch {
		case errors.Is(err, docproxy.ErrNoSourceURL):
			respond.SafeError(w, http.StatusNotFound, dataset.ErrDocumentNotFound)
		case errors.As(err, &upstream):
			logger.Warn("upstream document fetch failed",
				slog.String("reference", reference),
				slog.Int("upstream_status", upstream.StatusCode))
			respond.Error(w, upstream.StatusCode, errors.New("failed to fetch document"))
		default:
			logger.Error("document fetch failed",
				slog.String("reference", reference),
				slog.String("entity", owner.Name),
				slog.Any("error", err))
			respond.SafeError(w, http.StatusBadGateway, err)
		}
		return
	}

	// Restrict framing to same-origin: proxied documents render inside the
	// detail page but must not be embeddable elsewhere.
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("Content-Security-Policy", "frame-ancestors 'self'")
	w.Header().Set("X-Frame-Options", "SAMEORIGIN")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Body); err != nil {
		logger.Warn("failed to write proxied document",
			slog.String("reference", reference),
			slog.Any("error", err))
	}
}
