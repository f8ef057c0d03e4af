package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/plumline/claimdesk/internal/model"
	"github.com/plumline/claimdesk/internal/reconcile"
)

// DecisionBadge renders the colored status badge for a decision kind.
// PARTIAL and the legacy PARTIAL_APPROVAL spelling always render the same.
func DecisionBadge(kind model.DecisionKind) string {
	switch kind {
	case model.DecisionApproved:
		return ApprovedStyle.Render(ApprovedIcon + " APPROVED")
	case model.DecisionRejected:
		return RejectedStyle.Render(RejectedIcon + " REJECTED")
	case model.DecisionPartial:
		return PartialStyle.Render(ApprovedIcon + " PARTIAL")
	default:
		return ReviewStyle.Render(ReviewIcon + " MANUAL REVIEW")
	}
}

// RenderClaim renders the full decision panel for a claim view.
func RenderClaim(view model.ClaimView) string {
	var b strings.Builder

	b.WriteString(DecisionBadge(view.Decision.Kind))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("Confidence: %d%%",
		int(math.Round(view.Decision.DisplayConfidence()*100)))))
	b.WriteString("\n\n")

	if view.ClaimID != nil {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("Claim #%d", *view.ClaimID)))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Total claimed:   ₹%.2f\n", view.Extracted.DisplayTotal()))
	b.WriteString(fmt.Sprintf("Approved amount: %s\n",
		ApprovedStyle.Render(fmt.Sprintf("₹%.2f", view.Decision.ApprovedAmount))))

	if !view.AmountConsistent() {
		b.WriteString(FormatWarning("Approved amount exceeds the claimed total; flag for data review"))
		b.WriteString("\n")
	}

	if view.Decision.Kind == model.DecisionApproved && view.Extracted.DisplayTotal() == 0 {
		b.WriteString(FormatWarning("Missing financial documents: approved without an extracted claim total"))
		b.WriteString("\n")
	}

	if len(view.Decision.Breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderBreakdown(view.Decision.Breakdown))
	}

	if view.Decision.SummaryText != "" {
		b.WriteString("\n")
		b.WriteString(view.Decision.SummaryText)
		b.WriteString("\n")
	}

	if len(view.Decision.Reasons) > 0 {
		b.WriteString("\n")
		for _, reason := range view.Decision.Reasons {
			if reconcile.IsOverrideReason(reason) {
				b.WriteString(AdminTagStyle.Render("[ADMIN] "))
			}
			b.WriteString("• " + reason + "\n")
		}
	}

	if view.Extracted.Diagnosis != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("Diagnosis: " + view.Extracted.Diagnosis))
		b.WriteString("\n")
	}
	if view.Decision.MedicalContext != "" {
		b.WriteString(SubtleStyle.Render("Health insight: " + view.Decision.MedicalContext))
		b.WriteString("\n")
	}
	if view.PreviewURL != "" {
		b.WriteString(SubtleStyle.Render("Preview: " + view.PreviewURL))
		b.WriteString("\n")
	}

	return RenderBox("Adjudication Result", strings.TrimRight(b.String(), "\n"))
}

// RenderBreakdown renders the cost-calculation ledger. Row order is
// preserved as received; final rows form the bottom line. Amounts render
// as magnitudes regardless of sign.
func RenderBreakdown(items []model.BreakdownItem) string {
	var b strings.Builder
	b.WriteString(SubtleStyle.Render("Calculation breakdown"))
	b.WriteString("\n")

	for _, item := range items {
		line := fmt.Sprintf("%-32s ₹%.2f", item.Label, math.Abs(item.Amount))
		switch item.Kind {
		case model.BreakdownFinal:
			b.WriteString(FinalRowStyle.Render(line))
		case model.BreakdownDeduction:
			b.WriteString(DeductionStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderQueue renders the pending-review queue in server order.
func RenderQueue(entries []model.QueueEntry) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("No claims awaiting review.")
	}

	var b strings.Builder
	for _, entry := range entries {
		files := entry.Files()
		fileNote := ""
		if len(files) > 0 {
			fileNote = files[0]
			if len(files) > 1 {
				fileNote = fmt.Sprintf("%s (+%d more)", files[0], len(files)-1)
			}
		}

		b.WriteString(fmt.Sprintf("#%-6d %s  ₹%-10.2f %s\n",
			entry.ID,
			DecisionBadge(model.ParseDecisionKind(entry.Status)),
			entry.DisplayTotal(),
			SubtleStyle.Render(fileNote)))

		if reason := entry.PrimaryReason(); reason != "" {
			b.WriteString("        " + reason + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
