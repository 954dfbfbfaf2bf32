// Package format provides the date, currency and percentage primitives the
// derivation packages build on.
//
// Every function is total over its documented input domain: missing input
// produces a placeholder, never an error. Malformed date strings are the
// one input class assumed valid upstream (the snapshot loader is the
// validation boundary); they degrade to the placeholder or a zero result
// rather than panicking.
//
// The display locale and currency are configuration constants, not
// parameters: dates render day/month-name/year and amounts render as
// symbol-prefixed two-decimal AUD, per the profile's home locale.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered wherever an optional value is absent.
const Placeholder = "—" // em dash

// Display locale for dates and amounts. en-AU throughout; the profile is
// an Australian case-management view.
var locale = language.MustParse("en-AU")

var printer = message.NewPrinter(locale)

// dateLayouts are the accepted snapshot date encodings, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}

// parseDate parses a snapshot date string. The bool is false for empty or
// malformed input.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// midnight truncates t to its calendar day, anchored in UTC so that the
// difference between two midnights is always a whole number of days
// regardless of daylight-saving transitions.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the whole days from now's calendar day to the target
// date's calendar day. A target later today is 0, tomorrow is 1, yesterday
// is -1. Time of day is stripped from both operands before differencing so
// partial days never skew the count.
//
// Malformed dates return 0 (garbage in, garbage out; validated upstream).
func DaysUntil(now time.Time, dateStr string) int {
	target, ok := parseDate(dateStr)
	if !ok {
		return 0
	}
	diff := midnight(target).Sub(midnight(now))
	return int(diff / (24 * time.Hour))
}

// Date renders a date string as dd Mon yyyy. Empty or malformed input
// renders the placeholder dash.
func Date(dateStr string) string {
	t, ok := parseDate(dateStr)
	if !ok {
		return Placeholder
	}
	return t.Format("02 Jan 2006")
}

// DateTime renders a date string as dd Mon yyyy HH:mm. Empty or malformed
// input renders the placeholder dash.
func DateTime(dateStr string) string {
	t, ok := parseDate(dateStr)
	if !ok {
		return Placeholder
	}
	return t.Format("02 Jan 2006 15:04")
}

// LongDate renders a date string as "2 January 2006" (day, full month
// name, year), the form used in plan-expiry alert descriptions.
func LongDate(dateStr string) string {
	t, ok := parseDate(dateStr)
	if !ok {
		return Placeholder
	}
	return t.Format("2 January 2006")
}

// Currency renders an AUD amount as a symbol-prefixed two-decimal string
// with locale digit grouping, e.g. 59300 -> "$59,300.00". Zero and
// negative amounts are ordinary values; the minus sign precedes the
// symbol ("-$5.00").
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + printer.Sprintf("%.2f", -amount)
	}
	return "$" + printer.Sprintf("%.2f", amount)
}

// PlanElapsedPercent returns how far now sits between the start and end
// dates as an integer 0-100. It clamps to 0 before the start and 100 after
// the end; it is never negative and never exceeds 100.
//
// A malformed or inverted period reports 0.
func PlanElapsedPercent(now time.Time, startStr, endStr string) int {
	start, okStart := parseDate(startStr)
	end, okEnd := parseDate(endStr)
	if !okStart || !okEnd || !end.After(start) {
		return 0
	}
	if !now.After(start) {
		return 0
	}
	if !now.Before(end) {
		return 100
	}
	elapsed := now.Sub(start).Seconds()
	total := end.Sub(start).Seconds()
	pct := int(elapsed/total*100 + 0.5)
	if pct > 100 {
		pct = 100
	}
	return pct
}
