// Package alerts derives the profile's alert banners from a snapshot.
//
// Exactly three alert rules exist, evaluated in a fixed order: plan
// expiry, documents expiring soon, outstanding follow-ups. The output
// order is part of the contract, as are the alert ids — the display layer
// keys per-session dismissal on them, so an alert's id must be identical
// every time the same condition holds.
//
// Derivation is stateless and recomputed in full on every call. Given the
// same snapshot and the same reference time, the output is identical.
package alerts

import (
	"fmt"
	"strings"
	"time"

	"github.com/opencare-au/profileview/internal/format"
	"github.com/opencare-au/profileview/internal/profile"
	"github.com/opencare-au/profileview/internal/status"
)

// Stable alert ids, one per rule.
const (
	IDPlanExpired  = "plan-expired"
	IDPlanExpiring = "plan-expiring"
	IDDocsExpiring = "docs-expiring"
	IDFollowUps    = "follow-ups"
)

// expiryWindowDays is the look-ahead window for plan and document expiry.
const expiryWindowDays = 90

// Alert is one banner: a stable id, a severity tier, a title, and an
// optional description.
type Alert struct {
	ID          string      `json:"id"`
	Severity    status.Tier `json:"severity"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
}

// Derive produces the ordered alert list for a snapshot at the given
// reference time.
//
// Rule order is fixed: plan expired/expiring first, then documents
// expiring within 90 days, then outstanding follow-ups. Rules whose
// condition does not hold emit nothing.
func Derive(now time.Time, data *profile.Data) []Alert {
	var out []Alert

	if a := planAlert(now, data.ActivePlan); a != nil {
		out = append(out, *a)
	}
	if a := documentsAlert(now, data.Documents); a != nil {
		out = append(out, *a)
	}
	if a := followUpsAlert(data.CaseNotes, data.Communications); a != nil {
		out = append(out, *a)
	}

	return out
}

// planAlert flags the active plan when it has expired or expires within
// the 90-day window. No active plan, or an end date more than 90 days
// out, emits nothing.
func planAlert(now time.Time, plan *profile.NDISPlan) *Alert {
	if plan == nil {
		return nil
	}
	days := format.DaysUntil(now, plan.PlanEndDate)
	switch {
	case days < 0:
		overdue := -days
		return &Alert{
			ID:       IDPlanExpired,
			Severity: status.TierDestructive,
			Title:    "NDIS Plan Expired",
			Description: fmt.Sprintf("The active plan expired %d %s ago. Please initiate a plan review.",
				overdue, pluralize(overdue, "day", "days")),
		}
	case days <= expiryWindowDays:
		return &Alert{
			ID:       IDPlanExpiring,
			Severity: status.TierWarning,
			Title:    fmt.Sprintf("NDIS Plan Expiring in %d Days", days),
			Description: fmt.Sprintf("The current plan expires on %s. Begin plan review preparation.",
				format.LongDate(plan.PlanEndDate)),
		}
	default:
		return nil
	}
}

// documentsAlert flags documents whose expiry date falls inside the
// 0..90 day window. Documents without an expiry date never expire, and
// already-expired documents are excluded: this alert surfaces only the
// actionable look-ahead window.
func documentsAlert(now time.Time, docs []profile.ParticipantDocument) *Alert {
	var names []string
	for _, doc := range docs {
		if doc.ExpiryDate == "" {
			continue
		}
		days := format.DaysUntil(now, doc.ExpiryDate)
		if days >= 0 && days <= expiryWindowDays {
			names = append(names, doc.DocumentName)
		}
	}
	if len(names) == 0 {
		return nil
	}
	n := len(names)
	return &Alert{
		ID:          IDDocsExpiring,
		Severity:    status.TierWarning,
		Title:       fmt.Sprintf("%d %s Expiring Soon", n, pluralize(n, "Document", "Documents")),
		Description: strings.Join(names, ", "),
	}
}

// followUpsAlert counts open follow-ups across case notes and
// communications, notes first, each in original order. The description is
// a fixed pointer to the relevant views; individual items are not
// enumerated here.
func followUpsAlert(notes []profile.CaseNote, comms []profile.Communication) *Alert {
	count := 0
	for _, n := range notes {
		if n.Outstanding() {
			count++
		}
	}
	for _, c := range comms {
		if c.Outstanding() {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return &Alert{
		ID:          IDFollowUps,
		Severity:    status.TierInfo,
		Title:       fmt.Sprintf("%d Outstanding %s", count, pluralize(count, "Follow-up", "Follow-ups")),
		Description: "Review the Notes and Communications tabs for items requiring follow-up.",
	}
}

// pluralize selects the singular or plural word for a count.
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
