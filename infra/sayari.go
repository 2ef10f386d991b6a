package infra

const (
	SAYARI_API_HOST = "https://api.sayari.com"

	// SAYARI_OAUTH_AUDIENCE is the fixed audience of the client-credentials
	// grant, required by the token endpoint.
	SAYARI_OAUTH_AUDIENCE = "sayari.com"
)

type Sayari struct {
	host         string
	clientId     string
	clientSecret string
}

func InitializeSayari(host, clientId, clientSecret string) Sayari {
	return Sayari{
		host:         host,
		clientId:     clientId,
		clientSecret: clientSecret,
	}
}

func (s Sayari) Host() string {
	if s.host != "" {
		return s.host
	}
	return SAYARI_API_HOST
}

func (s Sayari) ClientId() string {
	return s.clientId
}

func (s Sayari) ClientSecret() string {
	return s.clientSecret
}
