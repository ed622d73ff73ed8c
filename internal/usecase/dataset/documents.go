package dataset

import (
	"strings"

	"sanctions-watch/internal/domain/entity"
)

// ProxyPathPrefix is the internal path that stands in for externally hosted
// documents on sensitive origins. The presentation layer serves it by
// fetching the original URL on demand.
const ProxyPathPrefix = "/proxy/document/"

// resolveDocument extracts document metadata from a raw document object,
// rewriting source URLs on sensitive origins to the internal proxy path
// keyed by the document reference. Returns false when every field would be
// empty, in which case the document is excluded from the entity.
func resolveDocument(doc RawRecord, sensitivePrefixes []string) (entity.Document, bool) {
	source := doc.Str("url")
	reference := doc.Str("reference")
	url := source
	if url != "" {
		for _, prefix := range sensitivePrefixes {
			if strings.HasPrefix(url, prefix) {
				url = ProxyPathPrefix + reference
				break
			}
		}
	}

	extra := doc.Sub("extraData")
	out := entity.Document{
		Reference:  reference,
		Title:      extra.Str("title"),
		Summary:    extra.Str("summary"),
		URL:        url,
		Categories: doc.Strings("categories"),
		SourceURL:  source,
	}
	if out.Empty() {
		return entity.Document{}, false
	}
	return out, true
}
