package repositories

import "github.com/corrisk/riskline/infra"

type Repositories struct {
	CompanyListRepository   CompanyListRepository
	SanctionsListRepository SanctionsListRepository
	SayariRepository        SayariRepository
	WorldBankRepository     WorldBankRepository
	GeocodingRepository     GeocodingRepository
	OutputFileRepository    OutputFileRepository
}

func NewRepositories(
	sayari infra.Sayari,
	sanctionsList infra.SanctionsList,
	worldBank infra.WorldBank,
	geocoding infra.Geocoding,
) Repositories {
	return Repositories{
		SanctionsListRepository: SanctionsListRepository{sanctionsList: sanctionsList},
		SayariRepository:        SayariRepository{sayari: sayari},
		WorldBankRepository:     WorldBankRepository{worldBank: worldBank},
		GeocodingRepository:     GeocodingRepository{geocoding: geocoding},
	}
}
