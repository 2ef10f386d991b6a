package pure_utils

import (
	"strings"
	"sync"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/biter777/countries"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	FuzzyMatchThreshold = 0.85
	countryCacheSize    = 1000
	countryCacheTTL     = time.Hour
)

var (
	// countryCache caches fuzzy match results to avoid repeated computation
	countryCache     *expirable.LRU[string, string]
	countryCacheOnce sync.Once

	countryNames     []countryNameEntry
	countryNamesOnce sync.Once
)

type countryNameEntry struct {
	lowerName string
	country   countries.CountryCode
}

func getCountryCache() *expirable.LRU[string, string] {
	countryCacheOnce.Do(func() {
		countryCache = expirable.NewLRU[string, string](countryCacheSize, nil, countryCacheTTL)
	})
	return countryCache
}

func getCountryNames() []countryNameEntry {
	countryNamesOnce.Do(func() {
		all := countries.All()
		countryNames = make([]countryNameEntry, 0, len(all))
		for _, c := range all {
			if c == countries.Unknown {
				continue
			}
			countryNames = append(countryNames, countryNameEntry{
				lowerName: strings.ToLower(c.Info().Name),
				country:   c,
			})
		}
	})
	return countryNames
}

// CountryToAlpha3 converts a country identifier (full name, Alpha-2, or
// Alpha-3 code) to its ISO 3166-1 Alpha-3 code, which is what the indicators
// API expects in its URL path. Misspelled names are resolved with a fuzzy
// match fallback.
//
// Returns the initial input if the country cannot be identified.
//
// Examples:
//
//	CountryToAlpha3("United States") // "USA"
//	CountryToAlpha3("US")            // "USA"
//	CountryToAlpha3("USA")           // "USA"
//	CountryToAlpha3("Frence")        // "FRA" (fuzzy match for typo)
//	CountryToAlpha3("")              // ""
func CountryToAlpha3(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	// Fast path: exact match (handles Alpha-2, Alpha-3, and standard English names)
	if c := countries.ByName(input); c != countries.Unknown {
		return c.Alpha3()
	}

	cache := getCountryCache()
	if cached, ok := cache.Get(input); ok {
		return cached
	}

	result := fuzzyMatchCountry(input)
	if result == "" {
		// In case of fuzzy match failure, return the initial input
		result = input
	}

	cache.Add(input, result)

	return result
}

// fuzzyMatchCountry matches the input against all country names with
// Jaro-Winkler, which behaves well on short strings like country names.
func fuzzyMatchCountry(input string) string {
	inputLower := strings.ToLower(input)
	names := getCountryNames()

	metric := metrics.NewJaroWinkler()

	bestMatch := countries.Unknown
	highestScore := 0.0

	for _, entry := range names {
		score := strutil.Similarity(inputLower, entry.lowerName, metric)
		if score > highestScore {
			highestScore = score
			bestMatch = entry.country
		}
	}

	if highestScore >= FuzzyMatchThreshold && bestMatch != countries.Unknown {
		return bestMatch.Alpha3()
	}

	return ""
}
