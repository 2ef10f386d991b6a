package jobs

import (
	"context"
	"time"

	"github.com/corrisk/riskline/usecases"
)

const enrichmentTimeout = 1 * time.Hour

// EnrichCompanies runs the company enrichment batch with sentry check-in
// monitoring around it.
func EnrichCompanies(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(
		ctx,
		uc,
		"company-enrichment",
		func(ctx context.Context, uc usecases.Usecases) error {
			usecase := uc.NewEnrichmentUsecase()
			ctx, cancel := context.WithTimeout(ctx, enrichmentTimeout)
			defer cancel()
			_, err := usecase.EnrichCompanies(ctx)
			return err
		},
	)
}
