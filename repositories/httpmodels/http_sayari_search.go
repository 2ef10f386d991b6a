package httpmodels

import (
	"github.com/guregu/null/v5"

	"github.com/corrisk/riskline/models"
	"github.com/corrisk/riskline/pure_utils"
)

// HTTPSayariSearchResponse is the entity-search payload. Every field of a
// result is optional; the provider omits whole risk factors for entities it
// has no data on.
type HTTPSayariSearchResponse struct {
	Data []HTTPSayariEntity `json:"data"`
}

type HTTPSayariEntity struct {
	Label     string   `json:"label"`
	Countries []string `json:"countries"`
	Risk      struct {
		RiskScore *HTTPSayariRiskFactor `json:"risk_score"`
		BaselAml  *HTTPSayariRiskFactor `json:"basel_aml"`
		CpiScore  *HTTPSayariRiskFactor `json:"cpi_score"`
	} `json:"risk"`
	AdverseMedia []HTTPSayariMediaMention `json:"adverse_media"`
}

type HTTPSayariRiskFactor struct {
	Value float64 `json:"value"`
	Level string  `json:"level"`
}

type HTTPSayariMediaMention struct {
	Title string `json:"title"`
}

func AdaptEntityProfile(entity HTTPSayariEntity) models.EntityProfile {
	profile := models.EntityProfile{
		RiskScore: adaptRiskFactor(entity.Risk.RiskScore),
		AmlRisk:   adaptRiskFactor(entity.Risk.BaselAml),
		CpiScore:  adaptRiskFactor(entity.Risk.CpiScore),
		Countries: entity.Countries,
	}
	if entity.Label != "" {
		profile.EntityName = null.StringFrom(entity.Label)
	}
	if entity.AdverseMedia != nil {
		profile.MediaMentions = pure_utils.Map(entity.AdverseMedia,
			func(m HTTPSayariMediaMention) string { return m.Title })
	}

	return profile
}

func adaptRiskFactor(factor *HTTPSayariRiskFactor) null.Float {
	if factor == nil {
		return null.Float{}
	}
	return null.FloatFrom(factor.Value)
}
