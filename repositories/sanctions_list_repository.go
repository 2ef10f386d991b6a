package repositories

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/corrisk/riskline/infra"
	"github.com/corrisk/riskline/models"
	"github.com/corrisk/riskline/utils"
)

type SanctionsListRepository struct {
	sanctionsList infra.SanctionsList
}

// FetchSanctionsList downloads the sanctions CSV and splits it into rows.
// The published file does not quote its name field, so a naive
// split-on-newline, split-on-comma parse is enough for the substring match
// performed on the first field.
func (repo SanctionsListRepository) FetchSanctionsList(ctx context.Context) (models.SanctionsList, error) {
	ctx, span := utils.OpenTelemetryTracerFromContext(ctx).Start(ctx, "SanctionsListRepository.FetchSanctionsList")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repo.sanctionsList.Url(), nil)
	if err != nil {
		return models.SanctionsList{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return models.SanctionsList{}, errors.Wrap(err, "could not download sanctions list")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SanctionsList{}, errors.Newf(
			"sanctions list download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.SanctionsList{}, errors.Wrap(err, "could not read sanctions list body")
	}

	var rows [][]string
	for _, line := range strings.Split(string(body), "\n") {
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}

	return models.SanctionsList{Rows: rows}, nil
}
