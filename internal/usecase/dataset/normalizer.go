package dataset

import (
	"strings"

	"sanctions-watch/internal/domain/entity"
	"sanctions-watch/internal/pkg/country"
	"sanctions-watch/internal/pkg/textutil"
)

// datasetCodes maps the feed's source codes to dataset tags. Unrecognized
// codes are dropped silently.
var datasetCodes = map[string]entity.DatasetTag{
	"INS": entity.DatasetInsolvency,
	"RRE": entity.DatasetAdverseMedia,
	"SAN": entity.DatasetSanctions,
	"POI": entity.DatasetPEP,
	"REL": entity.DatasetDisqualified,
}

// Normalizer transforms raw dataset records into normalized entities.
type Normalizer struct {
	// SensitivePrefixes is the operator-configured allowlist of document
	// origins whose URLs are rewritten to the internal proxy path.
	SensitivePrefixes []string
}

// Normalize converts one raw record into an entity. Returns false when the
// record lacks a non-empty name, in which case it is dropped from the
// collection without being treated as an error.
func (n *Normalizer) Normalize(raw RawRecord) (*entity.Entity, bool) {
	name := raw.Str("name")
	if name == "" {
		return nil, false
	}

	rawData := raw.Sub("raw")

	var tags []entity.DatasetTag
	for _, code := range rawData.Strings("datasets") {
		if tag, ok := datasetCodes[code]; ok {
			tags = append(tags, tag)
		}
	}

	e := &entity.Entity{
		Name:               name,
		Reference:          raw.Str("reference"),
		Fullname:           raw.Str("fullname"),
		Datasets:           tags,
		RiskLevel:          entity.DeriveRiskLevel(tags),
		Addresses:          normalizeAddresses(rawData.Items("addresses")),
		Insolvent:          raw.Flag("insolvent"),
		Media:              raw.Flag("media"),
		FinancialRegulator: raw.Flag("financialRegulator"),
		Slug:               textutil.Slugify(name),
	}

	for _, a := range raw.Items("aliases") {
		if alias := a.Str("name"); alias != "" {
			e.Aliases = append(e.Aliases, alias)
		}
	}

	for _, note := range raw.Items("notes") {
		if text := note.Str("text"); text != "" {
			e.Notes = append(e.Notes, parseNote(text))
		}
	}

	for _, b := range raw.Items("businesses") {
		if b.Str("name") == "" {
			continue
		}
		e.Businesses = append(e.Businesses, entity.Business{
			Name:      b.Str("name"),
			Position:  b.Str("position"),
			Reference: b.Str("reference"),
		})
	}

	for _, doc := range raw.Items("documents") {
		if d, ok := resolveDocument(doc, n.SensitivePrefixes); ok {
			e.Documents = append(e.Documents, d)
		}
	}

	return e, true
}

// normalizeAddresses joins the present components of each raw address with
// ", " and resolves the country by exact registry name only. An unresolved
// country is stored as the lowercase raw string; this deliberately skips the
// alias table and fuzzy search used elsewhere.
func normalizeAddresses(raws []RawRecord) []entity.Address {
	var out []entity.Address
	for _, addr := range raws {
		var parts []string
		for _, field := range []string{"address", "city", "county", "postcode", "country"} {
			if v := addr.Str(field); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			continue
		}

		countryField := addr.Str("country")
		code := strings.ToLower(countryField)
		if c, ok := country.LookupName(countryField); ok {
			code = strings.ToLower(c.Code)
		}

		out = append(out, entity.Address{
			Text:    strings.Join(parts, ", "),
			Country: code,
		})
	}
	return out
}
