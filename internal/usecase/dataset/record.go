package dataset

// RawRecord is one decoded line of the source dataset. The upstream feed
// enforces no schema: any field may be absent, null, or of an unexpected
// type, so access goes through tolerant accessors that degrade to zero
// values instead of failing.
type RawRecord map[string]any

// Str returns the string value for key, or "" when the field is absent or
// not a string.
func (r RawRecord) Str(key string) string {
	if r == nil {
		return ""
	}
	s, _ := r[key].(string)
	return s
}

// Flag returns the boolean value for key, or false when absent or not a bool.
func (r RawRecord) Flag(key string) bool {
	if r == nil {
		return false
	}
	b, _ := r[key].(bool)
	return b
}

// Sub returns the nested object at key, or nil when absent or not an object.
func (r RawRecord) Sub(key string) RawRecord {
	if r == nil {
		return nil
	}
	m, _ := r[key].(map[string]any)
	return RawRecord(m)
}

// Items returns the list of objects at key. Entries that are not objects are
// skipped; a missing or malformed field yields an empty slice.
func (r RawRecord) Items(key string) []RawRecord {
	if r == nil {
		return nil
	}
	list, _ := r[key].([]any)
	out := make([]RawRecord, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, RawRecord(m))
		}
	}
	return out
}

// Strings returns the list of string values at key, skipping non-strings.
func (r RawRecord) Strings(key string) []string {
	if r == nil {
		return nil
	}
	list, _ := r[key].([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
