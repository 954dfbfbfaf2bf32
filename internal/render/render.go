// Package render paints a profile snapshot as deterministic plain text.
//
// It is the in-repo stand-in for the display collaborator: it consumes
// only the derived values (alerts, classifications, badge counts, budget
// bars) plus raw snapshot fields, and it holds no state of its own. Given
// the same snapshot and reference time the output is byte-identical,
// which is what the golden-file tests rely on.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/opencare-au/profileview/internal/alerts"
	"github.com/opencare-au/profileview/internal/budget"
	"github.com/opencare-au/profileview/internal/format"
	"github.com/opencare-au/profileview/internal/profile"
	"github.com/opencare-au/profileview/internal/status"
	"github.com/opencare-au/profileview/internal/tabs"
)

// Summary renders the full profile view as text: header, alert banners,
// tab bar, then every section in tab order.
func Summary(now time.Time, data *profile.Data) string {
	var b strings.Builder

	writeHeader(&b, now, data)
	writeAlerts(&b, now, data)
	writeTabBar(&b, data)
	writePlan(&b, now, data)
	writeGoals(&b, data)
	writeServices(&b, data)
	writeDocuments(&b, now, data)
	writeNotes(&b, data)
	writeCommunications(&b, data)

	return b.String()
}

// Alerts renders just the alert banners, one per line.
func Alerts(now time.Time, data *profile.Data) string {
	var b strings.Builder
	writeAlerts(&b, now, data)
	return b.String()
}

func writeHeader(b *strings.Builder, now time.Time, data *profile.Data) {
	p := data.Participant
	fmt.Fprintf(b, "%s", p.DisplayName())
	if p.Pronouns != "" {
		fmt.Fprintf(b, " (%s)", p.Pronouns)
	}
	fmt.Fprintf(b, "\nNDIS %s", p.NDISNumber)

	if plan := data.ActivePlan; plan != nil {
		cls := status.PlanStatus(status.EffectivePlanStatus(now, plan))
		days := format.DaysUntil(now, plan.PlanEndDate)
		fmt.Fprintf(b, "  [%s]  %s", cls.Label, status.DaysRemainingLabel(days))
		fmt.Fprintf(b, "\nPlan: %s – %s (%d%% elapsed)",
			format.Date(plan.PlanStartDate),
			format.Date(plan.PlanEndDate),
			format.PlanElapsedPercent(now, plan.PlanStartDate, plan.PlanEndDate))
	}
	if !p.IsActive {
		b.WriteString("\n[Inactive]")
	}
	b.WriteString("\n\n")
}

func writeAlerts(b *strings.Builder, now time.Time, data *profile.Data) {
	list := alerts.Derive(now, data)
	if len(list) == 0 {
		return
	}
	for _, a := range list {
		fmt.Fprintf(b, "[%s] %s", strings.ToUpper(string(a.Severity)), a.Title)
		if a.Description != "" {
			fmt.Fprintf(b, "\n  %s", a.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeTabBar(b *strings.Builder, data *profile.Data) {
	counts := tabs.Counts(data)
	var parts []string
	for _, tab := range tabs.All {
		if tabs.ShowBadge(counts, tab) {
			parts = append(parts, fmt.Sprintf("%s (%d)", tab, counts[tab]))
			continue
		}
		parts = append(parts, string(tab))
	}
	fmt.Fprintf(b, "%s\n\n", strings.Join(parts, " | "))
}

func writePlan(b *strings.Builder, now time.Time, data *profile.Data) {
	b.WriteString("== NDIS Plan ==\n")
	plan := data.ActivePlan
	if plan == nil {
		b.WriteString("No active NDIS plan found.\n")
	} else {
		cls := status.PlanStatus(status.EffectivePlanStatus(now, plan))
		fmt.Fprintf(b, "Active Plan %s – %s  [%s]\n",
			format.Date(plan.PlanStartDate), format.Date(plan.PlanEndDate), cls.Label)
		total := format.Placeholder
		if plan.TotalPlanValue > 0 {
			total = format.Currency(plan.TotalPlanValue)
		}
		planNumber := plan.PlanNumber
		if planNumber == "" {
			planNumber = format.Placeholder
		}
		fmt.Fprintf(b, "Total Plan Value: %s\n", total)
		fmt.Fprintf(b, "Management: %s  Plan Number: %s  Review: %s\n",
			strings.ReplaceAll(plan.ManagementType, "_", " "),
			planNumber,
			format.Date(plan.PlanReviewDate))

		for _, cat := range plan.BudgetCategories {
			writeBudgetCategory(b, cat)
		}
	}

	if hist := data.HistoricalPlans(); len(hist) > 0 {
		fmt.Fprintf(b, "Plan History (%d)\n", len(hist))
		for _, p := range hist {
			// Historical plans show their stored status; the derived
			// override applies only to the flagged active plan.
			cls := status.PlanStatus(p.PlanStatus)
			fmt.Fprintf(b, "  %s – %s  [%s]\n",
				format.Date(p.PlanStartDate), format.Date(p.PlanEndDate), cls.Label)
		}
	}
	b.WriteString("\n")
}

func writeBudgetCategory(b *strings.Builder, cat profile.PlanBudgetCategory) {
	name := "Unknown Category"
	number := "?"
	if cat.SupportCategory != nil {
		name = cat.SupportCategory.Name
		number = fmt.Sprintf("%02d", cat.SupportCategory.CategoryNumber)
	}
	pctUsed := budget.PercentUsed(cat.AllocatedAmount, cat.SpentAmount, cat.CommittedAmount)
	bar := budget.ComputeFor(cat)
	fmt.Fprintf(b, "  Cat %s %s: %.0f%% used (%s)\n", number, name, pctUsed,
		budget.UsageBand(pctUsed))
	fmt.Fprintf(b, "    Spent %s (%.0f%%) | Committed %s (%.0f%%) | Available %s (%.0f%%) of %s\n",
		format.Currency(cat.SpentAmount), bar.SpentPct,
		format.Currency(cat.CommittedAmount), bar.CommittedPct,
		format.Currency(bar.AvailableAmount), bar.AvailablePct,
		format.Currency(cat.AllocatedAmount))
}

func writeGoals(b *strings.Builder, data *profile.Data) {
	b.WriteString("== Goals ==\n")
	if data.ActivePlan == nil || len(data.ActivePlan.Goals) == 0 {
		b.WriteString("No goals recorded. Goals are set as part of the NDIS plan.\n\n")
		return
	}
	for _, goal := range data.ActivePlan.Goals {
		cls := status.GoalStatus(goal.Status)
		fmt.Fprintf(b, "- %s  [%s]", goal.GoalTitle, cls.Label)
		if goal.Domain != "" {
			fmt.Fprintf(b, "  (%s)", goal.Domain)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeServices(b *strings.Builder, data *profile.Data) {
	b.WriteString("== Services & Providers ==\n")
	if len(data.ServiceAgreements) == 0 {
		b.WriteString("No service agreements recorded.\n\n")
		return
	}
	var active, inactive []profile.ServiceAgreement
	for _, sa := range data.ServiceAgreements {
		if sa.Status == "active" {
			active = append(active, sa)
		} else {
			inactive = append(inactive, sa)
		}
	}
	if len(active) > 0 {
		fmt.Fprintf(b, "Active Service Agreements (%d)\n", len(active))
		for _, sa := range active {
			writeAgreement(b, sa)
		}
	}
	if len(inactive) > 0 {
		fmt.Fprintf(b, "Previous / Inactive Agreements (%d)\n", len(inactive))
		for _, sa := range inactive {
			writeAgreement(b, sa)
		}
	}
	b.WriteString("\n")
}

func writeAgreement(b *strings.Builder, sa profile.ServiceAgreement) {
	name := "Unknown Provider"
	if sa.Provider != nil {
		name = sa.Provider.BusinessName
	}
	cls := status.AgreementStatus(sa.Status)
	period := format.Date(sa.StartDate)
	if sa.EndDate != "" {
		period += " – " + format.Date(sa.EndDate)
	} else {
		period += "+"
	}
	fmt.Fprintf(b, "  %s  [%s]  %s", name, cls.Label, period)
	if sa.TotalValue > 0 {
		fmt.Fprintf(b, "  %s", format.Currency(sa.TotalValue))
	}
	b.WriteString("\n")
}

func writeDocuments(b *strings.Builder, now time.Time, data *profile.Data) {
	b.WriteString("== Documents ==\n")
	if len(data.Documents) == 0 {
		b.WriteString("No documents uploaded.\n\n")
		return
	}
	for _, doc := range data.Documents {
		fmt.Fprintf(b, "  %s", doc.DocumentName)
		if doc.IsConfidential {
			b.WriteString(" [confidential]")
		}
		if exp := status.DocumentExpiry(now, doc); exp != nil {
			fmt.Fprintf(b, " [%s]", exp.Label)
		}
		if doc.AccessLevel != profile.AccessAllStaff {
			fmt.Fprintf(b, " [%s]", status.DocumentAccess(doc.AccessLevel).Label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeNotes(b *strings.Builder, data *profile.Data) {
	b.WriteString("== Case Notes ==\n")
	if len(data.CaseNotes) == 0 {
		b.WriteString("No case notes recorded.\n\n")
		return
	}
	var outstanding []profile.CaseNote
	for _, n := range data.CaseNotes {
		if n.Outstanding() {
			outstanding = append(outstanding, n)
		}
	}
	if len(outstanding) > 0 {
		fmt.Fprintf(b, "Outstanding Follow-ups (%d)\n", len(outstanding))
		for _, n := range outstanding {
			title := n.Title
			if title == "" {
				title = "Untitled note"
			}
			fmt.Fprintf(b, "  ! %s", title)
			if n.FollowUpDate != "" {
				fmt.Fprintf(b, " – Due %s", format.Date(n.FollowUpDate))
			}
			b.WriteString("\n")
		}
	}
	for _, n := range data.CaseNotes {
		title := n.Title
		if title == "" {
			title = "Untitled note"
		}
		cls := status.NoteType(n.NoteType)
		fmt.Fprintf(b, "  %s  [%s]  %s\n", title, cls.Label, format.DateTime(n.CreatedAt))
	}
	b.WriteString("\n")
}

func writeCommunications(b *strings.Builder, data *profile.Data) {
	b.WriteString("== Communications ==\n")
	if len(data.Communications) == 0 {
		b.WriteString("No communications logged.\n")
		return
	}
	var outstanding []profile.Communication
	for _, c := range data.Communications {
		if c.Outstanding() {
			outstanding = append(outstanding, c)
		}
	}
	if len(outstanding) > 0 {
		fmt.Fprintf(b, "Pending Follow-ups (%d)\n", len(outstanding))
		for _, c := range outstanding {
			subject := c.Subject
			if subject == "" {
				subject = "No subject"
			}
			fmt.Fprintf(b, "  ! %s", subject)
			if c.FollowUpDate != "" {
				fmt.Fprintf(b, " – Due %s", format.Date(c.FollowUpDate))
			}
			b.WriteString("\n")
		}
	}
	for _, c := range data.Communications {
		typeCls := status.CommunicationType(c.CommunicationType)
		fmt.Fprintf(b, "  %s %s  %s", typeCls.Label, c.Direction, format.DateTime(c.CommunicationDate))
		if c.Outcome != "" {
			fmt.Fprintf(b, "  [%s]", status.CommunicationOutcome(c.Outcome).Label)
		}
		b.WriteString("\n")
	}
}
