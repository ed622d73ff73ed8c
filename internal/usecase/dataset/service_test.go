package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	path := writeDataset(t,
		`{"name":"Alpha Corp","reference":"R-1","raw":{"datasets":["SAN"]}}`,
		`{"name":"beta llc","fullname":"Beta Logistics LLC","aliases":[{"name":"BetaCo"}],"raw":{"datasets":["POI"]}}`,
		`{"name":"Zed Holdings","documents":[{"reference":"DOC-9","url":"https://public.example.org/d.pdf"}]}`,
	)
	return &Service{Loader: newTestLoader(path)}
}

func TestServiceList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		dataset   string
		wantNames []string
	}{
		{
			name:      "no filters returns all in file order",
			wantNames: []string{"Alpha Corp", "beta llc", "Zed Holdings"},
		},
		{
			name:      "dataset all is no filter",
			dataset:   "all",
			wantNames: []string{"Alpha Corp", "beta llc", "Zed Holdings"},
		},
		{
			name:      "query matches name case-insensitively",
			query:     "BETA",
			wantNames: []string{"beta llc"},
		},
		{
			name:      "query matches fullname",
			query:     "logistics",
			wantNames: []string{"beta llc"},
		},
		{
			name:      "query matches reference",
			query:     "r-1",
			wantNames: []string{"Alpha Corp"},
		},
		{
			name:      "query matches alias",
			query:     "betaco",
			wantNames: []string{"beta llc"},
		},
		{
			name:      "dataset filter",
			dataset:   "sanctions",
			wantNames: []string{"Alpha Corp"},
		},
		{
			name:      "query and dataset filter combined",
			query:     "corp",
			dataset:   "pep",
			wantNames: []string{},
		},
		{
			name:      "no match",
			query:     "nothing here",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.List(ctx, tt.query, tt.dataset)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestServiceBySlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.BySlug(ctx, "alpha-corp")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Corp", e.Name)

	// Case-insensitive fallback.
	e, err = svc.BySlug(ctx, "Alpha-Corp")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Corp", e.Name)

	_, err = svc.BySlug(ctx, "missing-entity")
	assert.True(t, errors.Is(err, ErrEntityNotFound))
}

func TestServiceBySlugFirstMatchWins(t *testing.T) {
	path := writeDataset(t,
		`{"name":"John Smith","reference":"FIRST"}`,
		`{"name":"John Smith","reference":"SECOND"}`,
	)
	svc := &Service{Loader: newTestLoader(path)}

	e, err := svc.BySlug(context.Background(), "john-smith")
	require.NoError(t, err)
	assert.Equal(t, "FIRST", e.Reference)
}

func TestServiceSitemap(t *testing.T) {
	svc := newTestService(t)

	groups := svc.Sitemap(context.Background())
	require.Len(t, groups, 3)

	assert.Equal(t, "A", groups[0].Letter)
	assert.Equal(t, "B", groups[1].Letter)
	assert.Equal(t, "Z", groups[2].Letter)

	require.Len(t, groups[1].Entities, 1)
	assert.Equal(t, "beta llc", groups[1].Entities[0].Name)
}

func TestServiceFindDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, owner, err := svc.FindDocument(ctx, "DOC-9")
	require.NoError(t, err)
	assert.Equal(t, "Zed Holdings", owner.Name)
	assert.Equal(t, "https://public.example.org/d.pdf", doc.SourceURL)

	_, _, err = svc.FindDocument(ctx, "DOC-404")
	assert.True(t, errors.Is(err, ErrDocumentNotFound))
}

func TestServiceSitemapSortsWithinGroup(t *testing.T) {
	path := writeDataset(t,
		`{"name":"zulu trading"}`,
		`{"name":"Zebra Ltd"}`,
	)
	svc := &Service{Loader: newTestLoader(path)}

	groups := svc.Sitemap(context.Background())
	require.Len(t, groups, 1)
	assert.Equal(t, "Z", groups[0].Letter)
	require.Len(t, groups[0].Entities, 2)
	assert.Equal(t, "Zebra Ltd", groups[0].Entities[0].Name)
	assert.Equal(t, "zulu trading", groups[0].Entities[1].Name)
}
