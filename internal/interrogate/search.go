// Package interrogate holds the analysis logic behind the jamfctl
// verbs: name search, detail diffing, audits, and report building.
// Everything here works against the jamf.Client interface so commands
// and tests can inject what they need.
package interrogate

import (
	"strings"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

// FilterByName returns the items whose name contains query,
// case-insensitively. Only the name is matched; order is preserved.
func FilterByName(items []jamf.Summary, query string) []jamf.Summary {
	q := strings.ToLower(query)
	var matches []jamf.Summary
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			matches = append(matches, item)
		}
	}
	return matches
}
