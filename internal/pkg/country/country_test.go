package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "exact alpha-2 code",
			input:    "GB",
			wantCode: "GB",
			wantOK:   true,
		},
		{
			name:     "lowercase alpha-2 code",
			input:    "fr",
			wantCode: "FR",
			wantOK:   true,
		},
		{
			name:     "alias UK",
			input:    "UK",
			wantCode: "GB",
			wantOK:   true,
		},
		{
			name:     "alias russia lowercase",
			input:    "russia",
			wantCode: "RU",
			wantOK:   true,
		},
		{
			name:     "exact display name case-insensitive",
			input:    "france",
			wantCode: "FR",
			wantOK:   true,
		},
		{
			name:     "fuzzy one character off",
			input:    "Germny",
			wantCode: "DE",
			wantOK:   true,
		},
		{
			name:     "surrounding whitespace",
			input:    "  Malta  ",
			wantCode: "MT",
			wantOK:   true,
		},
		{
			name:   "too short for fuzzy match",
			input:  "B",
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
		{
			name:   "nonsense text",
			input:  "xqzkvwpqrtlm",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Resolve(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, c.Code)
				assert.NotEmpty(t, c.Name)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	first, ok := Resolve("Germny")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		c, ok := Resolve("Germny")
		require.True(t, ok)
		assert.Equal(t, first, c)
	}
}

func TestLookupName(t *testing.T) {
	c, ok := LookupName("France")
	require.True(t, ok)
	assert.Equal(t, "FR", c.Code)

	// Exact name lookup skips the alias table and fuzzy search.
	_, ok = LookupName("UK")
	assert.False(t, ok)
	_, ok = LookupName("Frnce")
	assert.False(t, ok)
	_, ok = LookupName("")
	assert.False(t, ok)
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "Malta", NameOf("MT"))
	assert.Equal(t, "ZZ", NameOf("ZZ"))
}

func TestSetAliases(t *testing.T) {
	SetAliases(map[string]string{
		"holland":   "NL",
		"atlantis":  "XX", // unknown code, ignored
		" britain ": " gb ",
	})

	c, ok := Resolve("Holland")
	require.True(t, ok)
	assert.Equal(t, "NL", c.Code)

	c, ok = Resolve("BRITAIN")
	require.True(t, ok)
	assert.Equal(t, "GB", c.Code)

	_, ok = Resolve("atlantis")
	assert.False(t, ok)
}
