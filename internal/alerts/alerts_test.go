package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencare-au/profileview/internal/profile"
	"github.com/opencare-au/profileview/internal/status"
)

var now = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func day(offset int) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func planEnding(endDate string) *profile.NDISPlan {
	return &profile.NDISPlan{
		ID:            "plan-1",
		PlanStartDate: "2025-04-29",
		PlanEndDate:   endDate,
		PlanStatus:    "active",
	}
}

func TestDerive_EmptySnapshot(t *testing.T) {
	assert.Empty(t, Derive(now, &profile.Data{}))
}

func TestDerive_PlanExpiringInFiveDays(t *testing.T) {
	data := &profile.Data{ActivePlan: planEnding(day(5))}

	got := Derive(now, data)

	require.Len(t, got, 1)
	assert.Equal(t, IDPlanExpiring, got[0].ID)
	assert.Equal(t, status.TierWarning, got[0].Severity)
	assert.Equal(t, "NDIS Plan Expiring in 5 Days", got[0].Title)
	assert.Contains(t, got[0].Description, "20 March 2026", "description carries the long-form expiry date")
	assert.Contains(t, got[0].Description, "Begin plan review preparation.")
}

func TestDerive_PlanFarOut_NoAlert(t *testing.T) {
	data := &profile.Data{ActivePlan: planEnding(day(200))}
	assert.Empty(t, Derive(now, data))
}

func TestDerive_PlanAtWindowBoundary(t *testing.T) {
	got := Derive(now, &profile.Data{ActivePlan: planEnding(day(90))})
	require.Len(t, got, 1)
	assert.Equal(t, "NDIS Plan Expiring in 90 Days", got[0].Title)

	assert.Empty(t, Derive(now, &profile.Data{ActivePlan: planEnding(day(91))}))
}

func TestDerive_PlanExpired(t *testing.T) {
	got := Derive(now, &profile.Data{ActivePlan: planEnding(day(-14))})

	require.Len(t, got, 1)
	assert.Equal(t, IDPlanExpired, got[0].ID)
	assert.Equal(t, status.TierDestructive, got[0].Severity)
	assert.Equal(t, "NDIS Plan Expired", got[0].Title)
	assert.Contains(t, got[0].Description, "expired 14 days ago")
	assert.Contains(t, got[0].Description, "initiate a plan review")
}

func TestDerive_PlanExpired_SingularDay(t *testing.T) {
	got := Derive(now, &profile.Data{ActivePlan: planEnding(day(-1))})

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Description, "expired 1 day ago", "singular day agrees with the count")
}

func TestDerive_NoActivePlan_NoPlanAlert(t *testing.T) {
	// Historical plans alone never trigger the plan rule.
	data := &profile.Data{Plans: []profile.NDISPlan{*planEnding(day(-400))}}
	assert.Empty(t, Derive(now, data))
}

func doc(name, expiry string) profile.ParticipantDocument {
	return profile.ParticipantDocument{
		ID:           "doc-" + name,
		DocumentName: name,
		ExpiryDate:   expiry,
		AccessLevel:  profile.AccessAllStaff,
	}
}

func TestDerive_DocumentsExpiringWindow(t *testing.T) {
	// One doc inside the 90-day window, one outside: only the near one is
	// counted and listed.
	data := &profile.Data{Documents: []profile.ParticipantDocument{
		doc("Medication Authority.pdf", day(10)),
		doc("OT Report.pdf", day(95)),
	}}

	got := Derive(now, data)

	require.Len(t, got, 1)
	assert.Equal(t, IDDocsExpiring, got[0].ID)
	assert.Equal(t, status.TierWarning, got[0].Severity)
	assert.Equal(t, "1 Document Expiring Soon", got[0].Title)
	assert.Equal(t, "Medication Authority.pdf", got[0].Description)
}

func TestDerive_DocumentsExpiring_Plural(t *testing.T) {
	data := &profile.Data{Documents: []profile.ParticipantDocument{
		doc("First.pdf", day(10)),
		doc("Second.pdf", day(30)),
	}}

	got := Derive(now, data)

	require.Len(t, got, 1)
	assert.Equal(t, "2 Documents Expiring Soon", got[0].Title)
	assert.Equal(t, "First.pdf, Second.pdf", got[0].Description, "names joined in original order")
}

func TestDerive_ExpiredDocumentExcluded(t *testing.T) {
	// Already-expired documents are outside this alert's window.
	data := &profile.Data{Documents: []profile.ParticipantDocument{
		doc("Lapsed.pdf", day(-3)),
	}}
	assert.Empty(t, Derive(now, data))
}

func TestDerive_DocumentWithoutExpiryIgnored(t *testing.T) {
	data := &profile.Data{Documents: []profile.ParticipantDocument{
		doc("Evergreen.pdf", ""),
	}}
	assert.Empty(t, Derive(now, data))
}

func TestDerive_OutstandingFollowUps(t *testing.T) {
	data := &profile.Data{
		CaseNotes: []profile.CaseNote{
			{ID: "n1", NoteType: "progress", FollowUpRequired: true, FollowUpCompleted: false},
			{ID: "n2", NoteType: "review", FollowUpRequired: true, FollowUpCompleted: true},
		},
		Communications: []profile.Communication{
			{ID: "c1", CommunicationType: "phone_call", FollowUpRequired: true, FollowUpCompleted: false},
			{ID: "c2", CommunicationType: "email", FollowUpRequired: false},
		},
	}

	got := Derive(now, data)

	require.Len(t, got, 1)
	assert.Equal(t, IDFollowUps, got[0].ID)
	assert.Equal(t, status.TierInfo, got[0].Severity)
	assert.Equal(t, "2 Outstanding Follow-ups", got[0].Title, "completed follow-ups are excluded")
	assert.Equal(t, "Review the Notes and Communications tabs for items requiring follow-up.", got[0].Description)
}

func TestDerive_SingleFollowUp_Singular(t *testing.T) {
	data := &profile.Data{
		CaseNotes: []profile.CaseNote{
			{ID: "n1", NoteType: "progress", FollowUpRequired: true},
		},
	}

	got := Derive(now, data)

	require.Len(t, got, 1)
	assert.Equal(t, "1 Outstanding Follow-up", got[0].Title)
}

func TestDerive_RuleOrderFixed(t *testing.T) {
	// All three rules firing: plan first, documents second, follow-ups
	// last, regardless of snapshot field order.
	data := &profile.Data{
		ActivePlan: planEnding(day(5)),
		Documents: []profile.ParticipantDocument{
			doc("Medication Authority.pdf", day(10)),
		},
		CaseNotes: []profile.CaseNote{
			{ID: "n1", NoteType: "progress", FollowUpRequired: true},
		},
	}

	got := Derive(now, data)

	require.Len(t, got, 3)
	assert.Equal(t, IDPlanExpiring, got[0].ID)
	assert.Equal(t, IDDocsExpiring, got[1].ID)
	assert.Equal(t, IDFollowUps, got[2].ID)
}

func TestDerive_Idempotent(t *testing.T) {
	data := &profile.Data{
		ActivePlan: planEnding(day(5)),
		Documents: []profile.ParticipantDocument{
			doc("Medication Authority.pdf", day(10)),
		},
		CaseNotes: []profile.CaseNote{
			{ID: "n1", NoteType: "progress", FollowUpRequired: true},
		},
	}

	first := Derive(now, data)
	second := Derive(now, data)

	assert.Equal(t, first, second, "same snapshot and reference time must derive identical alerts")
}
