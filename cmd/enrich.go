package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"

	"github.com/corrisk/riskline/infra"
	"github.com/corrisk/riskline/jobs"
	"github.com/corrisk/riskline/repositories"
	"github.com/corrisk/riskline/usecases"
	"github.com/corrisk/riskline/utils"
)

// RunEnrichment is the entrypoint of the enrichment batch: it reads the
// configuration from the environment, wires the repositories and runs the job.
func RunEnrichment() error {
	config := EnrichmentConfig{
		Env:           utils.GetEnv("ENV", "development"),
		AppName:       "riskline",
		LoggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		SentryDsn:     utils.GetEnv("SENTRY_DSN", ""),

		SayariHost:         utils.GetEnv("SAYARI_BASE_URL", ""),
		SayariClientId:     utils.GetEnv("SAYARI_CLIENT_ID", ""),
		SayariClientSecret: utils.GetEnv("SAYARI_CLIENT_SECRET", ""),
		SanctionsListUrl:   utils.GetEnv("SANCTIONS_LIST_URL", ""),
		WorldBankHost:      utils.GetEnv("WORLD_BANK_BASE_URL", ""),
		GeocodingHost:      utils.GetEnv("GEOLOCATION_BASE_URL", ""),
		GeocodingApiKey:    utils.GetEnv("GEOLOCATION_API_KEY", ""),

		CompanyListFile:  utils.GetEnv("COMPANY_LIST_FILE", "list_2.csv"),
		OutputCsvFile:    utils.GetEnv("OUTPUT_CSV_FILE", "enriched_list_2.csv"),
		OutputReportFile: utils.GetEnv("OUTPUT_REPORT_FILE", "risk_report.txt"),
		MaxCompanies:     utils.GetEnv("MAX_COMPANIES", 0),

		EnableTracing: utils.GetEnv("ENABLE_TRACING", false),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger(config.LoggingFormat).
		With("run_id", uuid.NewString())
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(config.SentryDsn, config.Env)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(infra.TelemetryConfiguration{
		ApplicationName: config.AppName,
		Enabled:         config.EnableTracing,
	})
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	ctx = utils.StoreOpenTelemetryTracerInContext(ctx, telemetryRessources.Tracer)

	uc := usecases.Usecases{
		Repositories: repositories.NewRepositories(
			infra.InitializeSayari(config.SayariHost, config.SayariClientId, config.SayariClientSecret),
			infra.InitializeSanctionsList(config.SanctionsListUrl),
			infra.InitializeWorldBank(config.WorldBankHost),
			infra.InitializeGeocoding(config.GeocodingHost, config.GeocodingApiKey),
		),
		Config: usecases.Configuration{
			CompanyListFile:  config.CompanyListFile,
			OutputCsvFile:    config.OutputCsvFile,
			OutputReportFile: config.OutputReportFile,
			MaxCompanies:     config.MaxCompanies,
		},
	}

	if err := jobs.EnrichCompanies(ctx, uc); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	return nil
}
