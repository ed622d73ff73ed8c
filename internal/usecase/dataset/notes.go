package dataset

import (
	"strings"

	"sanctions-watch/internal/domain/entity"
	"sanctions-watch/internal/pkg/country"
)

// parseNote processes a note's raw text, extracting an embedded country
// reference from pipe-delimited annotations such as "Flag state | Malta".
//
// Text without a pipe is returned unchanged. Otherwise the segments are
// scanned left to right, pairing each non-empty segment with its successor:
// a successor that resolves as a country is merged into the text and
// processing stops at that first match, dropping any unconsumed trailing
// segments. This early return mirrors the behavior of the upstream feed
// tooling, including its quirks. A successor that is not a country is joined
// with " - "; a final segment with no successor is appended as-is.
func parseNote(text string) entity.Note {
	if !strings.Contains(text, "|") {
		return entity.Note{Text: text}
	}

	parts := strings.Split(text, "|")
	var processed []string
	for i := 0; i < len(parts); {
		part := strings.TrimSpace(parts[i])
		if part == "" {
			i++
			continue
		}

		if i+1 < len(parts) {
			next := strings.TrimSpace(parts[i+1])
			if c, ok := country.Resolve(next); ok {
				processed = append(processed, part+" "+c.Name)
				return entity.Note{
					Text:    strings.Join(processed, " "),
					Country: &entity.CountryValue{Code: c.Code, Name: c.Name},
				}
			}
			if next != "" {
				processed = append(processed, part+" - "+next)
				i += 2
				continue
			}
			processed = append(processed, part)
			i++
			continue
		}

		processed = append(processed, part)
		i++
	}

	return entity.Note{Text: strings.Join(processed, " ")}
}
