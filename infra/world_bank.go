package infra

const (
	WORLD_BANK_API_HOST = "https://api.worldbank.org"

	// CORRUPTION_INDICATOR is the control-of-corruption percentile rank
	// indicator queried for every country.
	CORRUPTION_INDICATOR = "CC.PER.RNK"
)

type WorldBank struct {
	host string
}

func InitializeWorldBank(host string) WorldBank {
	return WorldBank{host: host}
}

func (wb WorldBank) Host() string {
	if wb.host != "" {
		return wb.host
	}
	return WORLD_BANK_API_HOST
}
