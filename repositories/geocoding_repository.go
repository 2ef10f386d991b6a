package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/corrisk/riskline/infra"
	"github.com/corrisk/riskline/repositories/httpmodels"
	"github.com/corrisk/riskline/utils"
)

type GeocodingRepository struct {
	geocoding infra.Geocoding
}

// GeocodeCompany forward-geocodes the company name. A name the provider
// cannot place yields the invalid string without an error.
func (repo GeocodingRepository) GeocodeCompany(ctx context.Context, companyName string) (null.String, error) {
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).Start(ctx, "GeocodingRepository.GeocodeCompany")
	defer span.End()

	u := fmt.Sprintf("%s/v1/forward?%s", repo.geocoding.Host(), url.Values{
		"access_key": {repo.geocoding.ApiKey()},
		"query":      {companyName},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return null.String{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return null.String{}, errors.Wrapf(err, "could not geocode %q", companyName)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return null.String{}, errors.Newf(
			"geocoding API returned status %d for %q", resp.StatusCode, companyName)
	}

	var geocodingResponse httpmodels.HTTPGeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&geocodingResponse); err != nil {
		return null.String{}, errors.Wrapf(err, "could not decode geocoding result for %q", companyName)
	}

	return httpmodels.AdaptGeolocation(geocodingResponse), nil
}
