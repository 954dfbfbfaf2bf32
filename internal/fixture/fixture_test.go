package fixture

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencare-au/profileview/internal/format"
)

var now = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequentialGenerator("id")

	assert.Equal(t, "id-1", gen.NewID())
	assert.Equal(t, "id-2", gen.NewID())
	assert.Equal(t, "id-3", gen.NewID())
}

func TestUUIDGenerator_ValidAndUnique(t *testing.T) {
	gen := UUIDGenerator{}

	a := gen.NewID()
	b := gen.NewID()

	_, err := uuid.Parse(a)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSample_Deterministic(t *testing.T) {
	a := Sample(now, NewSequentialGenerator("id"))
	b := Sample(now, NewSequentialGenerator("id"))

	assert.Equal(t, a, b, "same reference time and generator must build the same snapshot")
}

func TestSample_ActivePlanAppearsInPlans(t *testing.T) {
	data := Sample(now, NewSequentialGenerator("id"))

	require.NotNil(t, data.ActivePlan)
	found := false
	for _, p := range data.Plans {
		if p.ID == data.ActivePlan.ID {
			found = true
		}
	}
	assert.True(t, found, "the active plan must also appear in the plan history list")
	assert.Len(t, data.HistoricalPlans(), 1)
}

func TestSample_ExercisesAlertWindows(t *testing.T) {
	data := Sample(now, NewSequentialGenerator("id"))

	// Active plan ends inside the 90-day expiring window.
	days := format.DaysUntil(now, data.ActivePlan.PlanEndDate)
	assert.Greater(t, days, 0)
	assert.LessOrEqual(t, days, 90)

	// Documents cover all three expiry cases: inside the window, beyond
	// it, and already expired.
	var inWindow, beyond, expired int
	for _, doc := range data.Documents {
		if doc.ExpiryDate == "" {
			continue
		}
		switch d := format.DaysUntil(now, doc.ExpiryDate); {
		case d < 0:
			expired++
		case d <= 90:
			inWindow++
		default:
			beyond++
		}
	}
	assert.Equal(t, 1, inWindow)
	assert.Equal(t, 1, beyond)
	assert.Equal(t, 1, expired)
}

func TestSample_FollowUpMix(t *testing.T) {
	data := Sample(now, NewSequentialGenerator("id"))

	outstanding := 0
	for _, n := range data.CaseNotes {
		if n.Outstanding() {
			outstanding++
		}
	}
	for _, c := range data.Communications {
		if c.Outstanding() {
			outstanding++
		}
	}
	assert.Equal(t, 2, outstanding, "one open note follow-up and one open communication follow-up")
}
