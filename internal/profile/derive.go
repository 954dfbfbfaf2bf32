package profile

import "strings"

// Outstanding reports whether the note has a follow-up that is still open.
//
// This predicate is shared verbatim with Communication.Outstanding: a
// follow-up is outstanding iff it is required and not yet completed. The
// two must never drift apart.
func (n CaseNote) Outstanding() bool {
	return n.FollowUpRequired && !n.FollowUpCompleted
}

// Outstanding reports whether the communication has a follow-up that is
// still open. Same semantics as CaseNote.Outstanding.
func (c Communication) Outstanding() bool {
	return c.FollowUpRequired && !c.FollowUpCompleted
}

// HistoricalPlans returns the plans that are not the active plan, in their
// original order. With no active plan, every plan is historical.
func (d *Data) HistoricalPlans() []NDISPlan {
	var out []NDISPlan
	for _, p := range d.Plans {
		if d.ActivePlan != nil && p.ID == d.ActivePlan.ID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DisplayName returns the participant's name for headers, quoting the
// preferred name when one is recorded.
func (p Participant) DisplayName() string {
	if p.PreferredName != "" {
		return p.FirstName + " \"" + p.PreferredName + "\" " + p.LastName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Initials returns the uppercased first letters of the participant's first
// and last names, for avatar fallbacks.
func (p Participant) Initials() string {
	var b strings.Builder
	for _, name := range []string{p.FirstName, p.LastName} {
		for _, r := range name {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
