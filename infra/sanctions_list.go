package infra

// OFAC_SDN_URL points at the published Specially Designated Nationals list.
const OFAC_SDN_URL = "https://www.treasury.gov/ofac/downloads/sdn.csv"

type SanctionsList struct {
	url string
}

func InitializeSanctionsList(url string) SanctionsList {
	return SanctionsList{url: url}
}

func (s SanctionsList) Url() string {
	if s.url != "" {
		return s.url
	}
	return OFAC_SDN_URL
}
