package cmd

import "github.com/go-playground/validator/v10"

// EnrichmentConfig collects everything the enrichment run reads from the
// environment. Credentials are deliberately not required here: missing
// credentials surface per company as the documented authentication failure
// path instead of blocking the whole run at startup.
type EnrichmentConfig struct {
	Env           string
	AppName       string
	LoggingFormat string `validate:"oneof=text json"`
	SentryDsn     string

	SayariHost         string `validate:"omitempty,url"`
	SayariClientId     string
	SayariClientSecret string
	SanctionsListUrl   string `validate:"omitempty,url"`
	WorldBankHost      string `validate:"omitempty,url"`
	GeocodingHost      string `validate:"omitempty,url"`
	GeocodingApiKey    string

	CompanyListFile  string `validate:"required"`
	OutputCsvFile    string `validate:"required"`
	OutputReportFile string `validate:"required"`
	MaxCompanies     int    `validate:"gte=0"`

	EnableTracing bool
}

func (config EnrichmentConfig) Validate() error {
	return validator.New().Struct(config)
}
