package models

import "strings"

// SanctionsList is the raw row set of the downloaded sanctions CSV. Rows are
// kept verbatim as split fields; only the first field (the listed entity
// name) is ever consulted.
type SanctionsList struct {
	Rows [][]string
}

// Matches reports whether the company name appears in the list, using
// case-insensitive substring containment against each row's entity name.
// An empty list matches nothing, which is how a failed download degrades.
func (l SanctionsList) Matches(companyName string) bool {
	needle := strings.ToLower(companyName)
	for _, row := range l.Rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		if strings.Contains(strings.ToLower(row[0]), needle) {
			return true
		}
	}
	return false
}
