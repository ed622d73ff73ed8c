// Package entity defines the core domain entities for the application.
// It contains the normalized watchlist entity shape derived from raw dataset
// records, along with its dataset and risk classifications.
package entity

// DatasetTag is a categorical label attached to an entity, derived from the
// two/three-letter source codes carried by the raw dataset.
type DatasetTag string

const (
	DatasetInsolvency   DatasetTag = "insolvency"
	DatasetAdverseMedia DatasetTag = "adverse_media"
	DatasetSanctions    DatasetTag = "sanctions"
	DatasetPEP          DatasetTag = "pep"
	DatasetDisqualified DatasetTag = "disqualified"
)

// RiskLevel is a coarse severity classification derived from dataset tags.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// DeriveRiskLevel computes the risk level from the given dataset tags.
// Sanctions takes priority over pep; everything else is LOW.
func DeriveRiskLevel(tags []DatasetTag) RiskLevel {
	level := RiskLow
	for _, tag := range tags {
		switch tag {
		case DatasetSanctions:
			return RiskHigh
		case DatasetPEP:
			level = RiskMedium
		}
	}
	return level
}

// Address is a normalized postal address. Country holds the lowercase ISO
// alpha-2 code when the raw country name resolved exactly, otherwise the
// lowercase raw string.
type Address struct {
	Text    string `json:"text"`
	Country string `json:"country"`
}

// Note is a processed annotation attached to an entity. Country is set when
// the note text carried a recognizable country reference.
type Note struct {
	Text    string        `json:"text"`
	Country *CountryValue `json:"country,omitempty"`
}

// CountryValue is a resolved country reference embedded in notes.
type CountryValue struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Document is a supporting document attached to an entity. URL may point at
// the internal proxy path when the source URL is on a sensitive origin.
type Document struct {
	Reference  string   `json:"reference"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	URL        string   `json:"url"`
	Categories []string `json:"categories"`

	// SourceURL is the upstream location the proxy endpoint fetches from.
	// It equals URL unless the URL was rewritten to the proxy path, and is
	// never exposed in API responses.
	SourceURL string `json:"-"`
}

// Empty reports whether every field of the document is empty.
// Documents with no content are excluded from entities.
func (d Document) Empty() bool {
	return d.Reference == "" && d.Title == "" && d.Summary == "" &&
		d.URL == "" && len(d.Categories) == 0
}

// Business is an organization the entity is linked to.
type Business struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Reference string `json:"reference"`
}

// Entity is a normalized person/business record with risk and dataset
// classification. Instances are immutable per load cycle; the whole
// collection is rebuilt from the dataset file on every load.
type Entity struct {
	Name               string       `json:"name"`
	Reference          string       `json:"reference"`
	Fullname           string       `json:"fullname"`
	Datasets           []DatasetTag `json:"datasets"`
	RiskLevel          RiskLevel    `json:"risk_level"`
	Aliases            []string     `json:"aliases"`
	Notes              []Note       `json:"notes"`
	Addresses          []Address    `json:"addresses"`
	Documents          []Document   `json:"documents"`
	Businesses         []Business   `json:"businesses"`
	Insolvent          bool         `json:"insolvent"`
	Media              bool         `json:"media"`
	FinancialRegulator bool         `json:"financialRegulator"`
	Slug               string       `json:"slug"`
}

// HasDataset reports whether the entity carries the given dataset tag.
func (e *Entity) HasDataset(tag DatasetTag) bool {
	for _, t := range e.Datasets {
		if t == tag {
			return true
		}
	}
	return false
}
