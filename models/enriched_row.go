package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guregu/null/v5"
)

// NoDataFound is the placeholder written wherever an upstream value is
// absent or the call that should have produced it failed.
const NoDataFound = "No data found"

var EnrichedCsvHeader = []string{
	"Company Name",
	"Sayari Entity Name",
	"Sayari Risk Score",
	"AML Risk Score",
	"CPI Risk Score",
	"Negative Media Mentions",
	"OFAC Sanctioned",
	"Country Corruption Rank",
	"Geolocation (Lon, Lat)",
	"Overall Risk Level",
}

// EnrichedRow is one fully-enriched company, flattened to the ten output
// columns. Built once per company and appended, never mutated afterwards.
type EnrichedRow struct {
	CompanyName    string
	Profile        EntityProfile
	Sanctioned     bool
	CorruptionRank null.Float
	Geolocation    null.String
	RiskLevel      RiskLevel
}

func (r EnrichedRow) SanctionedLabel() string {
	if r.Sanctioned {
		return "Yes"
	}
	return "No"
}

// Cells renders the row in output column order. Cells are joined with a bare
// comma and are not quoted, so a value with an embedded comma (notably the
// geolocation cell) widens the row. That matches the historical output format
// consumers already parse; changing it would break them.
func (r EnrichedRow) Cells() []string {
	return []string{
		r.CompanyName,
		renderString(r.Profile.EntityName),
		renderFloat(r.Profile.RiskScore),
		renderFloat(r.Profile.AmlRisk),
		renderFloat(r.Profile.CpiScore),
		renderInt(r.Profile.MediaMentionCount()),
		r.SanctionedLabel(),
		renderFloat(r.CorruptionRank),
		renderString(r.Geolocation),
		r.RiskLevel.String(),
	}
}

// ReportBlock renders the company's section of the text report, including the
// trailing separator line.
func (r EnrichedRow) ReportBlock() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Company: %s\n", r.CompanyName)
	fmt.Fprintf(&sb, "Risk Level: %s\n", r.RiskLevel)
	fmt.Fprintf(&sb, "Risk Score: %s\n", renderFloat(r.Profile.RiskScore))
	fmt.Fprintf(&sb, "AML Risk Score: %s\n", renderFloat(r.Profile.AmlRisk))
	fmt.Fprintf(&sb, "CPI Risk Score: %s\n", renderFloat(r.Profile.CpiScore))
	fmt.Fprintf(&sb, "Negative Media Mentions: %s\n", renderInt(r.Profile.MediaMentionCount()))
	fmt.Fprintf(&sb, "Sanctioned: %s\n", r.SanctionedLabel())
	fmt.Fprintf(&sb, "Country Corruption Rank: %s\n", renderFloat(r.CorruptionRank))
	fmt.Fprintf(&sb, "Geolocation: %s\n", renderString(r.Geolocation))
	sb.WriteString("----------------------\n")
	return sb.String()
}

func renderString(v null.String) string {
	if !v.Valid || v.String == "" {
		return NoDataFound
	}
	return v.String
}

func renderFloat(v null.Float) string {
	if !v.Valid {
		return NoDataFound
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

func renderInt(v null.Int) string {
	if !v.Valid {
		return NoDataFound
	}
	return strconv.FormatInt(v.Int64, 10)
}
