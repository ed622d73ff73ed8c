// Package country resolves free-text country names and codes to canonical
// ISO 3166-1 alpha-2 codes. The registry is built once at init from the
// countries library and is read-only afterwards, so lookups are safe for
// concurrent use without locking.
package country

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/biter777/countries"
)

// Country is a resolved country reference.
type Country struct {
	Code string // ISO 3166-1 alpha-2, uppercase
	Name string // display name from the registry
}

// defaultAliases maps common alternative names and codes that the ISO
// registry does not recognize directly. Operators can extend the table via
// SetAliases at startup.
var defaultAliases = map[string]string{
	"UK":          "GB",
	"USA":         "US",
	"UAE":         "AE",
	"RUSSIA":      "RU",
	"TAIWAN":      "TW",
	"IRAN":        "IR",
	"NORTH KOREA": "KP",
	"SOUTH KOREA": "KR",
	"SYRIA":       "SY",
	"VENEZUELA":   "VE",
}

var (
	nameByCode map[string]string // alpha-2 -> display name
	codeByName map[string]string // uppercase display name -> alpha-2
	aliases    map[string]string // uppercase alias -> alpha-2
	allNames   []string          // sorted display names, for deterministic fuzzy scan
)

func init() {
	nameByCode = make(map[string]string, 256)
	codeByName = make(map[string]string, 256)
	for _, c := range countries.All() {
		code := c.Alpha2()
		name := c.String()
		if code == "" || name == "" {
			continue
		}
		nameByCode[code] = name
		codeByName[strings.ToUpper(name)] = code
		allNames = append(allNames, name)
	}
	sort.Strings(allNames)

	aliases = make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
}

// SetAliases merges additional alias entries into the alias table. Keys are
// matched case-insensitively; values must be alpha-2 codes. Intended to be
// called once during startup, before any concurrent lookups.
func SetAliases(extra map[string]string) {
	for k, v := range extra {
		code := strings.ToUpper(strings.TrimSpace(v))
		if _, ok := nameByCode[code]; !ok {
			continue
		}
		aliases[strings.ToUpper(strings.TrimSpace(k))] = code
	}
}

// Resolve maps a free-text country name or code to a canonical country.
// Lookup order: exact alpha-2 code, alias table, fuzzy name search.
// Returns false when the input cannot be resolved; callers must treat
// absence as "unresolved", not as an error.
func Resolve(input string) (Country, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Country{}, false
	}
	upper := strings.ToUpper(trimmed)

	if name, ok := nameByCode[upper]; ok {
		return Country{Code: upper, Name: name}, true
	}
	if code, ok := aliases[upper]; ok {
		return Country{Code: code, Name: nameByCode[code]}, true
	}
	if code, ok := codeByName[upper]; ok {
		return Country{Code: code, Name: nameByCode[code]}, true
	}
	return fuzzyMatch(upper)
}

// LookupName resolves a country by exact display-name match only. This is
// the narrower check used during address normalization, which deliberately
// skips the alias table and fuzzy search.
func LookupName(name string) (Country, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return Country{}, false
	}
	if code, ok := codeByName[upper]; ok {
		return Country{Code: code, Name: nameByCode[code]}, true
	}
	return Country{}, false
}

// NameOf returns the display name for an alpha-2 code, or the code itself
// when the registry does not know it.
func NameOf(code string) string {
	if name, ok := nameByCode[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// fuzzyMatch finds the registry name with the smallest Levenshtein distance
// to the input. The scan is over names in sorted order and prefers the first
// minimum, so results are deterministic. Matches further than a third of the
// input length are rejected to avoid nonsense resolutions.
func fuzzyMatch(upper string) (Country, bool) {
	maxDistance := len(upper) / 3
	if maxDistance < 1 {
		return Country{}, false
	}

	bestDistance := maxDistance + 1
	bestName := ""
	for _, name := range allNames {
		d := levenshtein.ComputeDistance(upper, strings.ToUpper(name))
		if d < bestDistance {
			bestDistance = d
			bestName = name
		}
	}
	if bestName == "" {
		return Country{}, false
	}
	code := codeByName[strings.ToUpper(bestName)]
	return Country{Code: code, Name: bestName}, true
}
