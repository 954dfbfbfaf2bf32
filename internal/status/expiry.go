package status

import (
	"fmt"
	"time"

	"github.com/opencare-au/profileview/internal/format"
	"github.com/opencare-au/profileview/internal/profile"
)

// Band is an urgency band for days-remaining and budget-usage indicators.
type Band string

const (
	BandNormal Band = "normal"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// DaysRemainingBand bands a days-remaining count for the header pill:
// overdue or within 30 days is high, within 90 days is medium, anything
// further out is normal.
func DaysRemainingBand(days int) Band {
	switch {
	case days < 0:
		return BandHigh
	case days <= 30:
		return BandHigh
	case days <= expiringSoonWindowDays:
		return BandMedium
	default:
		return BandNormal
	}
}

// DaysRemainingLabel renders the header pill text for a days-remaining
// count: "Nd overdue" once past the date, otherwise "Nd remaining".
func DaysRemainingLabel(days int) string {
	if days < 0 {
		return fmt.Sprintf("%dd overdue", -days)
	}
	return fmt.Sprintf("%dd remaining", days)
}

// ExpiryStatus is a per-document expiry marker.
type ExpiryStatus struct {
	Label string `json:"label"`
	Band  Band   `json:"band"`
}

// DocumentExpiry returns the expiry marker for a document, or nil when no
// marker applies (no expiry date, or expiry more than 90 days out).
//
// Already-expired documents get a marker here even though the
// docs-expiring alert excludes them: the alert surfaces only the
// actionable look-ahead window, the per-document badge still flags the
// lapse.
func DocumentExpiry(now time.Time, doc profile.ParticipantDocument) *ExpiryStatus {
	if doc.ExpiryDate == "" {
		return nil
	}
	days := format.DaysUntil(now, doc.ExpiryDate)
	switch {
	case days < 0:
		return &ExpiryStatus{Label: "Expired", Band: BandHigh}
	case days <= 30:
		return &ExpiryStatus{Label: fmt.Sprintf("%dd left", days), Band: BandHigh}
	case days <= expiringSoonWindowDays:
		return &ExpiryStatus{Label: fmt.Sprintf("%dd left", days), Band: BandMedium}
	default:
		return nil
	}
}
