// Package entity provides HTTP handlers for entity-related endpoints:
// listing/filtering, detail lookup by slug, and the sitemap views.
package entity

import "sanctions-watch/internal/domain/entity"

// ListResponse is the JSON envelope for the list/filter endpoint. Message is
// set only when the result set is empty, carrying a human-readable reason.
type ListResponse struct {
	Entities []*entity.Entity `json:"entities"`
	Message  string           `json:"message,omitempty"`
}

// DetailResponse is the JSON body of the detail endpoint. CurrentDate is the
// render date in display format, carried for content-freshness signals.
type DetailResponse struct {
	Entity      *entity.Entity `json:"entity"`
	CurrentDate string         `json:"current_date"`
}

// SitemapEntry is one entity reference in a sitemap group.
type SitemapEntry struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SitemapGroupDTO is one alphabetical bucket of the JSON sitemap.
type SitemapGroupDTO struct {
	Letter   string         `json:"letter"`
	Entities []SitemapEntry `json:"entities"`
}

// SitemapResponse is the JSON body of the sitemap endpoint.
type SitemapResponse struct {
	Letters []string          `json:"letters"`
	Groups  []SitemapGroupDTO `json:"groups"`
}
