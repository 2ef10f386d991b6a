package httpmodels

import (
	"fmt"
	"strconv"

	"github.com/guregu/null/v5"
)

type HTTPGeocodingResponse struct {
	Data []HTTPGeocodingResult `json:"data"`
}

type HTTPGeocodingResult struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Label     string   `json:"label"`
}

// AdaptGeolocation flattens the first geocoding result to a single
// "lon, lat" cell. A response with no result, or one missing either
// coordinate, adapts to the invalid string (rendered as the sentinel).
func AdaptGeolocation(response HTTPGeocodingResponse) null.String {
	if len(response.Data) == 0 {
		return null.String{}
	}

	first := response.Data[0]
	if first.Latitude == nil || first.Longitude == nil {
		return null.String{}
	}

	return null.StringFrom(fmt.Sprintf("%s, %s",
		strconv.FormatFloat(*first.Longitude, 'f', -1, 64),
		strconv.FormatFloat(*first.Latitude, 'f', -1, 64)))
}
