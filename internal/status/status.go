// Package status classifies domain status codes into display labels and
// severity tiers.
//
// Every classifier is a total function from a string code to a
// Classification. Unknown codes never error: they fall back to the raw
// code as the label with the neutral secondary tier, so new upstream
// values degrade gracefully instead of breaking the view.
//
// Classifiers are exhaustive switches with an explicit default arm rather
// than map lookups: the compiler keeps the known arms visible and the
// fallback is impossible to forget.
package status

import (
	"time"

	"github.com/opencare-au/profileview/internal/format"
	"github.com/opencare-au/profileview/internal/profile"
)

// Tier is a visual-urgency level. The set is closed; classifiers never
// produce a tier outside these five.
type Tier string

const (
	TierSuccess     Tier = "success"
	TierInfo        Tier = "info"
	TierWarning     Tier = "warning"
	TierDestructive Tier = "destructive"
	TierSecondary   Tier = "secondary"
)

// Classification pairs a display label with its severity tier.
type Classification struct {
	Label string `json:"label"`
	Tier  Tier   `json:"tier"`
}

// fallback is the treatment for any code a classifier does not know:
// the raw code verbatim, neutral tier.
func fallback(code string) Classification {
	return Classification{Label: code, Tier: TierSecondary}
}

// PlanStatus classifies a plan status code. expiring_soon and expired are
// derived codes (see EffectivePlanStatus), never stored upstream, but they
// classify here so every badge site renders them uniformly.
func PlanStatus(code string) Classification {
	switch code {
	case "active":
		return Classification{Label: "Active", Tier: TierSuccess}
	case "expiring_soon":
		return Classification{Label: "Expiring Soon", Tier: TierWarning}
	case "expired":
		return Classification{Label: "Expired", Tier: TierDestructive}
	case "superseded":
		return Classification{Label: "Superseded", Tier: TierSecondary}
	case "pending":
		return Classification{Label: "Pending", Tier: TierInfo}
	default:
		return fallback(code)
	}
}

// GoalStatus classifies a plan goal status code.
func GoalStatus(code string) Classification {
	switch code {
	case "not_started":
		return Classification{Label: "Not Started", Tier: TierSecondary}
	case "in_progress":
		return Classification{Label: "In Progress", Tier: TierInfo}
	case "achieved":
		return Classification{Label: "Achieved", Tier: TierSuccess}
	case "discontinued":
		return Classification{Label: "Discontinued", Tier: TierDestructive}
	default:
		return fallback(code)
	}
}

// NoteType classifies a case note type code.
func NoteType(code string) Classification {
	switch code {
	case "progress":
		return Classification{Label: "Progress Note", Tier: TierInfo}
	case "case_note":
		return Classification{Label: "Case Note", Tier: TierSecondary}
	case "review":
		return Classification{Label: "Review", Tier: TierInfo}
	case "incident":
		return Classification{Label: "Incident", Tier: TierDestructive}
	default:
		return fallback(code)
	}
}

// CommunicationType classifies a communication channel code.
func CommunicationType(code string) Classification {
	switch code {
	case "email":
		return Classification{Label: "Email", Tier: TierInfo}
	case "sms":
		return Classification{Label: "SMS", Tier: TierSuccess}
	case "phone_call":
		return Classification{Label: "Phone Call", Tier: TierInfo}
	case "letter":
		return Classification{Label: "Letter", Tier: TierSecondary}
	case "in_person":
		return Classification{Label: "In Person", Tier: TierWarning}
	case "video_call":
		return Classification{Label: "Video Call", Tier: TierInfo}
	default:
		return fallback(code)
	}
}

// CommunicationOutcome classifies a communication outcome code.
func CommunicationOutcome(code string) Classification {
	switch code {
	case "successful":
		return Classification{Label: "Successful", Tier: TierSuccess}
	case "no_answer":
		return Classification{Label: "No Answer", Tier: TierSecondary}
	case "left_message":
		return Classification{Label: "Left Message", Tier: TierWarning}
	case "failed":
		return Classification{Label: "Failed", Tier: TierDestructive}
	default:
		return fallback(code)
	}
}

// AgreementStatus classifies a service agreement status code.
func AgreementStatus(code string) Classification {
	switch code {
	case "active":
		return Classification{Label: "Active", Tier: TierSuccess}
	case "pending":
		return Classification{Label: "Pending", Tier: TierInfo}
	case "completed":
		return Classification{Label: "Completed", Tier: TierSecondary}
	case "cancelled":
		return Classification{Label: "Cancelled", Tier: TierDestructive}
	default:
		return fallback(code)
	}
}

// DocumentAccess classifies a document access level. The level is
// display-only hinting; nothing here enforces authorization.
func DocumentAccess(code string) Classification {
	switch code {
	case profile.AccessAllStaff:
		return Classification{Label: "All Staff", Tier: TierSecondary}
	case profile.AccessCoordinatorOnly:
		return Classification{Label: "Restricted", Tier: TierSecondary}
	case profile.AccessAdminOnly:
		return Classification{Label: "Admin Only", Tier: TierSecondary}
	default:
		return fallback(code)
	}
}

// expiringSoonWindowDays is the look-ahead window for the expiring_soon
// override and the document expiry alert.
const expiringSoonWindowDays = 90

// EffectivePlanStatus returns the status code a plan badge should display.
//
// The stored plan_status is overridden by proximity to the end date:
// past the end date the plan is expired, within 90 days it is
// expiring_soon, otherwise the stored status stands. Every site that
// badges the flagged active plan (header summary, plan detail) applies
// this; purely historical plans in a list do not.
func EffectivePlanStatus(now time.Time, plan *profile.NDISPlan) string {
	d := format.DaysUntil(now, plan.PlanEndDate)
	switch {
	case d < 0:
		return "expired"
	case d <= expiringSoonWindowDays:
		return "expiring_soon"
	default:
		return plan.PlanStatus
	}
}
