package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/corrisk/riskline/infra"
	"github.com/corrisk/riskline/models"
	"github.com/corrisk/riskline/repositories/httpmodels"
	"github.com/corrisk/riskline/utils"
)

type SayariRepository struct {
	sayari infra.Sayari
}

// SearchEntity looks a company up in the entity-risk API. Each call requests
// a fresh client-credentials token before searching; tokens are short-lived
// and the batch is small enough that caching them is not worth the staleness
// handling.
//
// A company that matches nothing yields the zero profile and no error.
func (repo SayariRepository) SearchEntity(ctx context.Context, companyName string) (models.EntityProfile, error) {
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).Start(ctx, "SayariRepository.SearchEntity")
	defer span.End()

	token, err := repo.requestToken(ctx)
	if err != nil {
		return models.EntityProfile{}, errors.Wrap(err, "could not authenticate against entity-risk API")
	}

	u := fmt.Sprintf("%s/v1/search/entity?%s", repo.sayari.Host(), url.Values{
		"q":     {companyName},
		"limit": {"1"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.EntityProfile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return models.EntityProfile{}, errors.Wrapf(err, "could not search entity %q", companyName)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.EntityProfile{}, errors.Newf(
			"entity search returned status %d for %q", resp.StatusCode, companyName)
	}

	var searchResponse httpmodels.HTTPSayariSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return models.EntityProfile{}, errors.Wrapf(err, "could not decode entity search result for %q", companyName)
	}

	if len(searchResponse.Data) == 0 {
		return models.EntityProfile{}, nil
	}

	return httpmodels.AdaptEntityProfile(searchResponse.Data[0]), nil
}

func (repo SayariRepository) requestToken(ctx context.Context) (string, error) {
	conf := clientcredentials.Config{
		ClientID:     repo.sayari.ClientId(),
		ClientSecret: repo.sayari.ClientSecret(),
		TokenURL:     fmt.Sprintf("%s/oauth/token", repo.sayari.Host()),
		AuthStyle:    oauth2.AuthStyleInParams,
		EndpointParams: url.Values{
			"audience": {infra.SAYARI_OAUTH_AUDIENCE},
		},
	}

	token, err := conf.Token(ctx)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}
