package usecases

import "github.com/corrisk/riskline/repositories"

// Configuration carries the run parameters that are not tied to a single
// external service: input and output locations, and the optional cap on how
// many companies one run processes (0 means all of them).
type Configuration struct {
	CompanyListFile  string
	OutputCsvFile    string
	OutputReportFile string
	MaxCompanies     int
}

type Usecases struct {
	Repositories repositories.Repositories
	Config       Configuration
}

func (u Usecases) NewEnrichmentUsecase() EnrichmentUsecase {
	return EnrichmentUsecase{
		config:       u.Config,
		repositories: u.Repositories,
	}
}
