// Package tabs computes the navigation badge counts for the profile view.
package tabs

import "github.com/opencare-au/profileview/internal/profile"

// Tab identifies one tab of the profile view.
type Tab string

const (
	TabOverview       Tab = "overview"
	TabPlan           Tab = "plan"
	TabGoals          Tab = "goals"
	TabServices       Tab = "services"
	TabDocuments      Tab = "documents"
	TabNotes          Tab = "notes"
	TabCommunications Tab = "communications"
)

// All lists the tabs in display order.
var All = []Tab{
	TabOverview,
	TabPlan,
	TabGoals,
	TabServices,
	TabDocuments,
	TabNotes,
	TabCommunications,
}

// Counts returns the per-tab badge counts.
//
// services counts only active agreements — historical agreements are shown
// in the tab but not badged. documents, notes and communications count
// everything. Tabs with no counting rule (overview, plan, goals) have no
// entry at all: an absent key and a zero count are different display
// states (see ShowBadge).
func Counts(data *profile.Data) map[Tab]int {
	activeAgreements := 0
	for _, sa := range data.ServiceAgreements {
		if sa.Status == "active" {
			activeAgreements++
		}
	}
	return map[Tab]int{
		TabServices:       activeAgreements,
		TabDocuments:      len(data.Documents),
		TabNotes:          len(data.CaseNotes),
		TabCommunications: len(data.Communications),
	}
}

// ShowBadge is the display layer's contract for badge rendering: a badge
// appears only when the tab has an entry in the count map and the count is
// greater than zero.
func ShowBadge(counts map[Tab]int, tab Tab) bool {
	n, ok := counts[tab]
	return ok && n > 0
}
