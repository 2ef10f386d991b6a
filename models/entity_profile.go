package models

import "github.com/guregu/null/v5"

// EntityProfile is what the entity-risk provider knows about a company.
// Every field is independently optional: a lookup that fails or matches
// nothing yields the zero profile and the output row degrades to the
// "No data found" sentinel, it never aborts the run.
type EntityProfile struct {
	EntityName null.String
	RiskScore  null.Float
	AmlRisk    null.Float
	CpiScore   null.Float
	// MediaMentions is nil when the provider returned nothing for the
	// company (unknown), as opposed to an empty slice (zero mentions).
	MediaMentions []string
	Countries     []string
}

func (p EntityProfile) MediaMentionCount() null.Int {
	if p.MediaMentions == nil {
		return null.Int{}
	}
	return null.IntFrom(int64(len(p.MediaMentions)))
}
