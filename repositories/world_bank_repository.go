package repositories

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/tidwall/gjson"

	"github.com/corrisk/riskline/infra"
	"github.com/corrisk/riskline/pure_utils"
	"github.com/corrisk/riskline/utils"
)

type WorldBankRepository struct {
	worldBank infra.WorldBank
}

// GetCorruptionRank queries the indicators API for the country's
// control-of-corruption percentile rank (most recent non-empty value).
//
// The response is a top-level array of [metadata, data points]; the value
// lives at 1.0.value. Any shape mismatch, including a null value for
// countries the indicator does not cover, yields the invalid float without
// an error: that is an expected gap in the dataset, not a failure.
func (repo WorldBankRepository) GetCorruptionRank(ctx context.Context, countryCode string) (null.Float, error) {
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).Start(ctx, "WorldBankRepository.GetCorruptionRank")
	defer span.End()

	code := pure_utils.CountryToAlpha3(countryCode)

	u := fmt.Sprintf("%s/v2/country/%s/indicator/%s?format=json&mrnev=1",
		repo.worldBank.Host(), code, infra.CORRUPTION_INDICATOR)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return null.Float{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return null.Float{}, errors.Wrapf(err, "could not fetch corruption rank for %s", code)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return null.Float{}, errors.Newf(
			"indicators API returned status %d for %s", resp.StatusCode, code)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return null.Float{}, errors.Wrap(err, "could not read indicators API response")
	}

	value := gjson.GetBytes(body, "1.0.value")
	if !value.Exists() || value.Type != gjson.Number {
		return null.Float{}, nil
	}

	return null.FloatFrom(value.Float()), nil
}
