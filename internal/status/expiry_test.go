package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencare-au/profileview/internal/profile"
)

func TestDaysRemainingBand(t *testing.T) {
	assert.Equal(t, BandHigh, DaysRemainingBand(-5), "overdue is high")
	assert.Equal(t, BandHigh, DaysRemainingBand(0))
	assert.Equal(t, BandHigh, DaysRemainingBand(30))
	assert.Equal(t, BandMedium, DaysRemainingBand(31))
	assert.Equal(t, BandMedium, DaysRemainingBand(90))
	assert.Equal(t, BandNormal, DaysRemainingBand(91))
}

func TestDaysRemainingLabel(t *testing.T) {
	assert.Equal(t, "45d remaining", DaysRemainingLabel(45))
	assert.Equal(t, "0d remaining", DaysRemainingLabel(0))
	assert.Equal(t, "14d overdue", DaysRemainingLabel(-14))
}

func docExpiring(expiry string) profile.ParticipantDocument {
	return profile.ParticipantDocument{
		ID:           "doc-1",
		DocumentName: "Medication Authority.pdf",
		ExpiryDate:   expiry,
		AccessLevel:  profile.AccessAllStaff,
	}
}

func TestDocumentExpiry_NoExpiryDate(t *testing.T) {
	// Absent expiry means "never expires", not "expired".
	assert.Nil(t, DocumentExpiry(now, docExpiring("")))
}

func TestDocumentExpiry_Expired(t *testing.T) {
	got := DocumentExpiry(now, docExpiring("2026-03-01"))
	require.NotNil(t, got)
	assert.Equal(t, "Expired", got.Label)
	assert.Equal(t, BandHigh, got.Band)
}

func TestDocumentExpiry_Within30Days(t *testing.T) {
	got := DocumentExpiry(now, docExpiring("2026-04-05"))
	require.NotNil(t, got)
	assert.Equal(t, "21d left", got.Label)
	assert.Equal(t, BandHigh, got.Band)
}

func TestDocumentExpiry_Within90Days(t *testing.T) {
	got := DocumentExpiry(now, docExpiring("2026-05-15"))
	require.NotNil(t, got)
	assert.Equal(t, "61d left", got.Label)
	assert.Equal(t, BandMedium, got.Band)
}

func TestDocumentExpiry_BeyondWindow(t *testing.T) {
	assert.Nil(t, DocumentExpiry(now, docExpiring("2026-09-11")))
}
