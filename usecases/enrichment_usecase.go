package usecases

import (
	"context"
	"strings"

	"github.com/guregu/null/v5"

	"github.com/corrisk/riskline/models"
	"github.com/corrisk/riskline/repositories"
	"github.com/corrisk/riskline/utils"
)

type EnrichmentUsecase struct {
	config       Configuration
	repositories repositories.Repositories
}

// EnrichCompanies runs the whole batch: read the company list, download the
// sanctions list once, enrich every company in order, then write the CSV and
// the text report.
//
// Companies are processed strictly sequentially. An upstream failure on one
// company degrades that company's fields to the sentinel and the run
// continues; only reading the input or writing the outputs is fatal.
func (uc EnrichmentUsecase) EnrichCompanies(ctx context.Context) (models.RunSummary, error) {
	logger := utils.LoggerFromContext(ctx)

	companyNames, err := uc.repositories.CompanyListRepository.ReadCompanyNames(ctx, uc.config.CompanyListFile)
	if err != nil {
		return models.RunSummary{}, err
	}
	if uc.config.MaxCompanies > 0 && len(companyNames) > uc.config.MaxCompanies {
		companyNames = companyNames[:uc.config.MaxCompanies]
	}
	logger.InfoContext(ctx, "enriching companies", "count", len(companyNames))

	sanctions, err := uc.repositories.SanctionsListRepository.FetchSanctionsList(ctx)
	if err != nil {
		// the run continues with an empty list: every company will report
		// as unsanctioned, which understates risk but matches the
		// longstanding behavior downstream consumers expect.
		logger.ErrorContext(ctx, "could not fetch sanctions list, continuing without it",
			"error", err.Error())
		sanctions = models.SanctionsList{}
	}

	csvLines := make([]string, 0, len(companyNames)+1)
	csvLines = append(csvLines, strings.Join(models.EnrichedCsvHeader, ", "))

	var report strings.Builder
	var summary models.RunSummary

	for _, companyName := range companyNames {
		row := uc.enrichCompany(ctx, companyName, sanctions)
		summary.Tally(row)
		csvLines = append(csvLines, strings.Join(row.Cells(), ","))
		report.WriteString(row.ReportBlock())
	}

	report.WriteString(summary.Render())

	if err := uc.repositories.OutputFileRepository.WriteFile(ctx,
		uc.config.OutputCsvFile, strings.Join(csvLines, "\n")+"\n"); err != nil {
		return summary, err
	}
	if err := uc.repositories.OutputFileRepository.WriteFile(ctx,
		uc.config.OutputReportFile, report.String()); err != nil {
		return summary, err
	}

	logger.InfoContext(ctx, "enrichment run done",
		"companies", summary.TotalCompanies,
		"high_risk", summary.HighRiskCount,
		"sanctioned", summary.SanctionedCount)

	return summary, nil
}

func (uc EnrichmentUsecase) enrichCompany(
	ctx context.Context,
	companyName string,
	sanctions models.SanctionsList,
) models.EnrichedRow {
	logger := utils.LoggerFromContext(ctx).With("company", companyName)

	profile, err := uc.repositories.SayariRepository.SearchEntity(ctx, companyName)
	if err != nil {
		logger.ErrorContext(ctx, "entity lookup failed", "error", err.Error())
		profile = models.EntityProfile{}
	}

	geolocation, err := uc.repositories.GeocodingRepository.GeocodeCompany(ctx, companyName)
	if err != nil {
		logger.ErrorContext(ctx, "geocoding failed", "error", err.Error())
		geolocation = null.String{}
	}

	corruptionRank := null.Float{}
	if len(profile.Countries) > 0 {
		corruptionRank, err = uc.repositories.WorldBankRepository.GetCorruptionRank(ctx, profile.Countries[0])
		if err != nil {
			logger.ErrorContext(ctx, "corruption rank lookup failed", "error", err.Error())
			corruptionRank = null.Float{}
		}
	}

	sanctioned := sanctions.Matches(companyName)

	return models.EnrichedRow{
		CompanyName:    companyName,
		Profile:        profile,
		Sanctioned:     sanctioned,
		CorruptionRank: corruptionRank,
		Geolocation:    geolocation,
		RiskLevel:      models.ClassifyRisk(profile.AmlRisk, profile.CpiScore, sanctioned),
	}
}
