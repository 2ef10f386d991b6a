package infra

const GEOCODING_API_HOST = "http://api.positionstack.com"

type Geocoding struct {
	host   string
	apiKey string
}

func InitializeGeocoding(host, apiKey string) Geocoding {
	return Geocoding{
		host:   host,
		apiKey: apiKey,
	}
}

func (g Geocoding) Host() string {
	if g.host != "" {
		return g.host
	}
	return GEOCODING_API_HOST
}

func (g Geocoding) ApiKey() string {
	return g.apiKey
}
