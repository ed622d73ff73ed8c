package dataset

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"sanctions-watch/internal/domain/entity"
)

// Service provides query use cases over the loaded entity collection.
// Every call goes through the loader, so results always reflect the dataset
// file as of the current load cycle.
type Service struct {
	Loader *Loader
}

// List returns entities matching the free-text query and dataset tag filter.
// The query matches case-insensitively as a substring of name, fullname,
// reference, or any alias. A dataset filter of "" or "all" matches
// everything.
func (s *Service) List(ctx context.Context, query, datasetTag string) []*entity.Entity {
	entities := s.Loader.LoadAll(ctx)

	q := strings.ToLower(strings.TrimSpace(query))
	filtered := entities
	if q != "" {
		filtered = make([]*entity.Entity, 0, len(entities))
		for _, e := range entities {
			if matchesQuery(e, q) {
				filtered = append(filtered, e)
			}
		}
	}

	if datasetTag != "" && datasetTag != "all" {
		tag := entity.DatasetTag(datasetTag)
		byTag := make([]*entity.Entity, 0, len(filtered))
		for _, e := range filtered {
			if e.HasDataset(tag) {
				byTag = append(byTag, e)
			}
		}
		filtered = byTag
	}

	return filtered
}

func matchesQuery(e *entity.Entity, q string) bool {
	if strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Fullname), q) ||
		strings.Contains(strings.ToLower(e.Reference), q) {
		return true
	}
	for _, alias := range e.Aliases {
		if strings.Contains(strings.ToLower(alias), q) {
			return true
		}
	}
	return false
}

// BySlug resolves an entity by exact slug match, falling back to a
// case-insensitive match. Slugs collide for entities sharing a name; the
// first match in file order wins. Returns ErrEntityNotFound when nothing
// matches.
func (s *Service) BySlug(ctx context.Context, slug string) (*entity.Entity, error) {
	entities := s.Loader.LoadAll(ctx)

	for _, e := range entities {
		if e.Slug == slug {
			return e, nil
		}
	}
	lower := strings.ToLower(slug)
	for _, e := range entities {
		if strings.ToLower(e.Slug) == lower {
			return e, nil
		}
	}
	return nil, ErrEntityNotFound
}

// SitemapGroup is one alphabetical bucket of the sitemap: entities whose
// names share an uppercase first character.
type SitemapGroup struct {
	Letter   string
	Entities []*entity.Entity
}

// Sitemap groups entities by the uppercase first character of their name,
// with entities sorted by name within each group and groups sorted
// alphabetically.
func (s *Service) Sitemap(ctx context.Context) []SitemapGroup {
	entities := s.Loader.LoadAll(ctx)

	sorted := make([]*entity.Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	grouped := make(map[string][]*entity.Entity)
	var letters []string
	for _, e := range sorted {
		r, _ := utf8.DecodeRuneInString(e.Name)
		letter := string(unicode.ToUpper(r))
		if _, ok := grouped[letter]; !ok {
			letters = append(letters, letter)
		}
		grouped[letter] = append(grouped[letter], e)
	}
	sort.Strings(letters)

	groups := make([]SitemapGroup, 0, len(letters))
	for _, letter := range letters {
		groups = append(groups, SitemapGroup{Letter: letter, Entities: grouped[letter]})
	}
	return groups
}

// FindDocument locates a document by reference across the whole collection,
// returning the document and its owning entity. Returns ErrDocumentNotFound
// when no entity carries a document with that reference.
func (s *Service) FindDocument(ctx context.Context, reference string) (entity.Document, *entity.Entity, error) {
	for _, e := range s.Loader.LoadAll(ctx) {
		for _, doc := range e.Documents {
			if doc.Reference == reference {
				return doc, e, nil
			}
		}
	}
	return entity.Document{}, nil, ErrDocumentNotFound
}
