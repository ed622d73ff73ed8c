package entity

import (
	"encoding/xml"
	"log/slog"
	"net/http"

	"sanctions-watch/internal/handler/http/respond"
	"sanctions-watch/internal/usecase/dataset"
)

// SitemapHandler serves the JSON sitemap: entities grouped by the uppercase
// first character of their name, groups sorted alphabetically.
type SitemapHandler struct {
	Svc *dataset.Service
}

func (h SitemapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	groups := h.Svc.Sitemap(r.Context())

	out := SitemapResponse{
		Letters: make([]string, 0, len(groups)),
		Groups:  make([]SitemapGroupDTO, 0, len(groups)),
	}
	for _, g := range groups {
		dto := SitemapGroupDTO{
			Letter:   g.Letter,
			Entities: make([]SitemapEntry, 0, len(g.Entities)),
		}
		for _, e := range g.Entities {
			dto.Entities = append(dto.Entities, SitemapEntry{Name: e.Name, Slug: e.Slug})
		}
		out.Letters = append(out.Letters, g.Letter)
		out.Groups = append(out.Groups, dto)
	}

	respond.JSON(w, http.StatusOK, out)
}

// xmlURLSet is the sitemaps.org urlset document.
type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// SitemapXMLHandler serves the XML sitemap for search engines: the homepage,
// the HTML sitemap, and every entity detail page.
type SitemapXMLHandler struct {
	Svc     *dataset.Service
	BaseURL string
	Logger  *slog.Logger
}

func (h SitemapXMLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entities := h.Svc.List(r.Context(), "", "")

	urls := []xmlURL{
		{Loc: h.BaseURL, ChangeFreq: "daily", Priority: 1.0},
		{Loc: h.BaseURL + "/sitemap", ChangeFreq: "daily", Priority: 0.8},
	}
	for _, e := range entities {
		urls = append(urls, xmlURL{
			Loc:        h.BaseURL + "/entity/" + e.Slug,
			ChangeFreq: "daily",
			Priority:   0.6,
		})
	}

	doc := xmlURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(doc); err != nil {
		h.Logger.Error("failed to encode sitemap XML", slog.Any("error", err))
	}
}
