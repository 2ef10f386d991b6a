package models

import "github.com/guregu/null/v5"

type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskVeryHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	case RiskVeryHigh:
		return "Very High"
	}
	return "Low"
}

// ClassifyRisk maps a company's risk factors to an ordinal risk level.
// The branches are ordered: a sanctioned company is always Very High, whatever
// its scores. An absent score never satisfies a threshold comparison, so a
// company with no data at all comes out Low.
func ClassifyRisk(amlRisk, cpiRisk null.Float, sanctioned bool) RiskLevel {
	exceeds := func(score null.Float, threshold float64) bool {
		return score.Valid && score.Float64 > threshold
	}

	switch {
	case sanctioned:
		return RiskVeryHigh
	case exceeds(amlRisk, 5) || exceeds(cpiRisk, 80):
		return RiskHigh
	case exceeds(amlRisk, 3) || exceeds(cpiRisk, 60):
		return RiskMedium
	default:
		return RiskLow
	}
}
