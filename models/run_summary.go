package models

import (
	"fmt"
	"strings"
)

// RunSummary accumulates the run-level counters rendered at the end of the
// text report.
type RunSummary struct {
	TotalCompanies       int
	HighRiskCount        int
	SanctionedCount      int
	NoMediaMentionsCount int
}

// Tally folds one enriched row into the counters. A company counts as high
// risk at level High or above, and as having no negative media mentions when
// the mention count is zero or unknown.
func (s *RunSummary) Tally(row EnrichedRow) {
	s.TotalCompanies++
	if row.RiskLevel >= RiskHigh {
		s.HighRiskCount++
	}
	if row.Sanctioned {
		s.SanctionedCount++
	}
	if mentions := row.Profile.MediaMentionCount(); !mentions.Valid || mentions.Int64 == 0 {
		s.NoMediaMentionsCount++
	}
}

func (s RunSummary) Render() string {
	var sb strings.Builder
	sb.WriteString("\nSummary:\n")
	fmt.Fprintf(&sb, "- %d out of %d companies are classified as HIGH risk due to AML/CPI risk factors.\n",
		s.HighRiskCount, s.TotalCompanies)
	fmt.Fprintf(&sb, "- %d companies are sanctioned.\n", s.SanctionedCount)
	fmt.Fprintf(&sb, "- %d companies have no negative media mentions, reducing reputational risk.\n",
		s.NoMediaMentionsCount)
	return sb.String()
}
