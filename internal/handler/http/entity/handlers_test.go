package entity_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctions-watch/internal/handler/http/entity"
	"sanctions-watch/internal/usecase/dataset"
)

func newTestMux(t *testing.T, lines ...string) *http.ServeMux {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entities.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))

	svc := &dataset.Service{Loader: &dataset.Loader{
		Path:         path,
		Normalizer:   &dataset.Normalizer{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		DisableCache: true,
	}}

	mux := http.NewServeMux()
	entity.Register(mux, svc, "https://watch.example", slog.New(slog.NewTextHandler(io.Discard, nil)))
	return mux
}

func get(t *testing.T, mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestListHandler(t *testing.T) {
	mux := newTestMux(t,
		`{"name":"Alpha Corp","raw":{"datasets":["SAN"]}}`,
		`{"name":"Beta LLC","raw":{"datasets":["POI"]}}`,
	)

	rr := get(t, mux, "/api/entities")
	require.Equal(t, http.StatusOK, rr.Code)

	var body entity.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Entities, 2)
	assert.Empty(t, body.Message)
	assert.Equal(t, "Alpha Corp", body.Entities[0].Name)
}

func TestListHandlerFilters(t *testing.T) {
	mux := newTestMux(t,
		`{"name":"Alpha Corp","raw":{"datasets":["SAN"]}}`,
		`{"name":"Beta LLC","raw":{"datasets":["POI"]}}`,
	)

	rr := get(t, mux, "/api/entities?q=beta&dataset=pep")
	require.Equal(t, http.StatusOK, rr.Code)

	var body entity.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Entities, 1)
	assert.Equal(t, "Beta LLC", body.Entities[0].Name)
}

func TestListHandlerEmptyMessages(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		target  string
		wantMsg string
	}{
		{
			name:    "empty dataset",
			lines:   []string{""},
			target:  "/api/entities",
			wantMsg: "No entities found in database",
		},
		{
			name:    "empty dataset with query still reports empty database",
			lines:   []string{""},
			target:  "/api/entities?q=zebra",
			wantMsg: "No entities found in database",
		},
		{
			name:    "empty dataset with dataset filter still reports empty database",
			lines:   []string{""},
			target:  "/api/entities?dataset=sanctions",
			wantMsg: "No entities found in database",
		},
		{
			name:    "no match for query",
			lines:   []string{`{"name":"Alpha Corp"}`},
			target:  "/api/entities?q=zebra",
			wantMsg: "No entities found matching your criteria",
		},
		{
			name:    "no match for dataset filter",
			lines:   []string{`{"name":"Alpha Corp"}`},
			target:  "/api/entities?dataset=sanctions",
			wantMsg: "No entities found matching your criteria",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newTestMux(t, tt.lines...)
			rr := get(t, mux, tt.target)
			require.Equal(t, http.StatusOK, rr.Code)

			var body entity.ListResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Empty(t, body.Entities)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestDetailHandler(t *testing.T) {
	mux := newTestMux(t, `{"name":"Alpha Corp","reference":"R-1"}`)

	rr := get(t, mux, "/entity/alpha-corp")
	require.Equal(t, http.StatusOK, rr.Code)

	var body entity.DetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotNil(t, body.Entity)
	assert.Equal(t, "Alpha Corp", body.Entity.Name)
	assert.Equal(t, "R-1", body.Entity.Reference)
	assert.NotEmpty(t, body.CurrentDate)
}

func TestDetailHandlerCaseInsensitiveSlug(t *testing.T) {
	mux := newTestMux(t, `{"name":"Alpha Corp"}`)

	rr := get(t, mux, "/entity/Alpha-Corp")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDetailHandlerNotFound(t *testing.T) {
	mux := newTestMux(t, `{"name":"Alpha Corp"}`)

	rr := get(t, mux, "/entity/nobody-here")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "not found")
}

func TestSitemapHandler(t *testing.T) {
	mux := newTestMux(t,
		`{"name":"Alpha Corp"}`,
		`{"name":"Beta LLC"}`,
		`{"name":"anchor trading"}`,
	)

	rr := get(t, mux, "/sitemap")
	require.Equal(t, http.StatusOK, rr.Code)

	var body entity.SitemapResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, []string{"A", "B"}, body.Letters)
	require.Len(t, body.Groups, 2)

	names := make([]string, 0, len(body.Groups[0].Entities))
	for _, e := range body.Groups[0].Entities {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Alpha Corp", "anchor trading"}, names)
	assert.Equal(t, "alpha-corp", body.Groups[0].Entities[0].Slug)
}

func TestSitemapXMLHandler(t *testing.T) {
	mux := newTestMux(t, `{"name":"Alpha Corp"}`)

	rr := get(t, mux, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/xml", rr.Header().Get("Content-Type"))

	xml := rr.Body.String()
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, xml, "<loc>https://watch.example</loc>")
	assert.Contains(t, xml, "<loc>https://watch.example/sitemap</loc>")
	assert.Contains(t, xml, "<loc>https://watch.example/entity/alpha-corp</loc>")
	assert.Contains(t, xml, "<changefreq>daily</changefreq>")
}
