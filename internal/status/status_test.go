package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opencare-au/profileview/internal/profile"
)

var now = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestPlanStatus_KnownCodes(t *testing.T) {
	assert.Equal(t, Classification{Label: "Active", Tier: TierSuccess}, PlanStatus("active"))
	assert.Equal(t, Classification{Label: "Expiring Soon", Tier: TierWarning}, PlanStatus("expiring_soon"))
	assert.Equal(t, Classification{Label: "Expired", Tier: TierDestructive}, PlanStatus("expired"))
	assert.Equal(t, Classification{Label: "Superseded", Tier: TierSecondary}, PlanStatus("superseded"))
	assert.Equal(t, Classification{Label: "Pending", Tier: TierInfo}, PlanStatus("pending"))
}

func TestPlanStatus_UnknownCodePassesThrough(t *testing.T) {
	got := PlanStatus("draft_v2")
	assert.Equal(t, "draft_v2", got.Label, "unknown code becomes its own label")
	assert.Equal(t, TierSecondary, got.Tier)
}

func TestGoalStatus(t *testing.T) {
	assert.Equal(t, Classification{Label: "Not Started", Tier: TierSecondary}, GoalStatus("not_started"))
	assert.Equal(t, Classification{Label: "In Progress", Tier: TierInfo}, GoalStatus("in_progress"))
	assert.Equal(t, Classification{Label: "Achieved", Tier: TierSuccess}, GoalStatus("achieved"))
	assert.Equal(t, Classification{Label: "Discontinued", Tier: TierDestructive}, GoalStatus("discontinued"))
	assert.Equal(t, Classification{Label: "on_hold", Tier: TierSecondary}, GoalStatus("on_hold"))
}

func TestNoteType(t *testing.T) {
	assert.Equal(t, "Progress Note", NoteType("progress").Label)
	assert.Equal(t, "Case Note", NoteType("case_note").Label)
	assert.Equal(t, "Review", NoteType("review").Label)
	assert.Equal(t, Classification{Label: "Incident", Tier: TierDestructive}, NoteType("incident"))
	assert.Equal(t, Classification{Label: "handover", Tier: TierSecondary}, NoteType("handover"))
}

func TestCommunicationType(t *testing.T) {
	assert.Equal(t, "Email", CommunicationType("email").Label)
	assert.Equal(t, "SMS", CommunicationType("sms").Label)
	assert.Equal(t, "Phone Call", CommunicationType("phone_call").Label)
	assert.Equal(t, "Letter", CommunicationType("letter").Label)
	assert.Equal(t, "In Person", CommunicationType("in_person").Label)
	assert.Equal(t, "Video Call", CommunicationType("video_call").Label)
	assert.Equal(t, Classification{Label: "fax", Tier: TierSecondary}, CommunicationType("fax"))
}

func TestCommunicationOutcome(t *testing.T) {
	assert.Equal(t, Classification{Label: "Successful", Tier: TierSuccess}, CommunicationOutcome("successful"))
	assert.Equal(t, Classification{Label: "No Answer", Tier: TierSecondary}, CommunicationOutcome("no_answer"))
	assert.Equal(t, Classification{Label: "Left Message", Tier: TierWarning}, CommunicationOutcome("left_message"))
	assert.Equal(t, Classification{Label: "Failed", Tier: TierDestructive}, CommunicationOutcome("failed"))
}

func TestAgreementStatus(t *testing.T) {
	assert.Equal(t, Classification{Label: "Active", Tier: TierSuccess}, AgreementStatus("active"))
	assert.Equal(t, Classification{Label: "Pending", Tier: TierInfo}, AgreementStatus("pending"))
	assert.Equal(t, Classification{Label: "Completed", Tier: TierSecondary}, AgreementStatus("completed"))
	assert.Equal(t, Classification{Label: "Cancelled", Tier: TierDestructive}, AgreementStatus("cancelled"))
}

func TestDocumentAccess(t *testing.T) {
	assert.Equal(t, "All Staff", DocumentAccess(profile.AccessAllStaff).Label)
	assert.Equal(t, "Restricted", DocumentAccess(profile.AccessCoordinatorOnly).Label)
	assert.Equal(t, "Admin Only", DocumentAccess(profile.AccessAdminOnly).Label)
	assert.Equal(t, Classification{Label: "external", Tier: TierSecondary}, DocumentAccess("external"))
}

func planEnding(endDate, stored string) *profile.NDISPlan {
	return &profile.NDISPlan{
		ID:            "plan-1",
		PlanStartDate: "2025-04-29",
		PlanEndDate:   endDate,
		PlanStatus:    stored,
	}
}

func TestEffectivePlanStatus_Expired(t *testing.T) {
	got := EffectivePlanStatus(now, planEnding("2026-03-14", "active"))
	assert.Equal(t, "expired", got, "past end date overrides stored status")
}

func TestEffectivePlanStatus_ExpiringSoon(t *testing.T) {
	// Exactly at the 90-day boundary is still expiring_soon.
	assert.Equal(t, "expiring_soon", EffectivePlanStatus(now, planEnding("2026-06-13", "active")))
	// End date today counts as 0 days, inside the window.
	assert.Equal(t, "expiring_soon", EffectivePlanStatus(now, planEnding("2026-03-15", "active")))
}

func TestEffectivePlanStatus_StoredStatusStands(t *testing.T) {
	// 91 days out: the stored status is displayed unchanged.
	assert.Equal(t, "active", EffectivePlanStatus(now, planEnding("2026-06-14", "active")))
	assert.Equal(t, "pending", EffectivePlanStatus(now, planEnding("2027-01-01", "pending")))
}

func TestClassifiers_Idempotent(t *testing.T) {
	// Same input, same output: no hidden state anywhere.
	assert.Equal(t, PlanStatus("active"), PlanStatus("active"))
	plan := planEnding("2026-06-13", "active")
	assert.Equal(t, EffectivePlanStatus(now, plan), EffectivePlanStatus(now, plan))
}
