package entity

import (
	"log/slog"
	"net/http"

	"sanctions-watch/internal/usecase/dataset"
)

// Register registers all entity-related HTTP handlers with the given mux:
// the list/filter API, the detail lookup, and both sitemap views.
func Register(mux *http.ServeMux, svc *dataset.Service, baseURL string, logger *slog.Logger) {
	mux.Handle("GET /api/entities", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /entity/{slug}", DetailHandler{Svc: svc})
	mux.Handle("GET /sitemap", SitemapHandler{Svc: svc})
	mux.Handle("GET /sitemap.xml", SitemapXMLHandler{Svc: svc, BaseURL: baseURL, Logger: logger})
}
