package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryToAlpha3(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"US", "USA"},
		{"USA", "USA"},
		{"United States", "USA"},
		{"GB", "GBR"},
		{"France", "FRA"},
		{"Frence", "FRA"}, // typo, fuzzy matched
		{"", ""},
		{"  DE  ", "DEU"},
		{"not a country at all", "not a country at all"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CountryToAlpha3(tt.input))
		})
	}
}

func TestCountryToAlpha3CachesFuzzyResults(t *testing.T) {
	first := CountryToAlpha3("Grmany")
	second := CountryToAlpha3("Grmany")
	assert.Equal(t, first, second)
	assert.Equal(t, "DEU", first)
}
