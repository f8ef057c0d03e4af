// Package reconcile contains the pure claim-state logic: rebuilding a full
// claim view from a persisted queue record, and merging a manual override
// into an existing view. Nothing in this package performs I/O.
package reconcile

import (
	"encoding/json"
	"strings"

	"github.com/plumline/claimdesk/internal/model"
)

// summaryPrefix marks a decision reason that doubles as the narrative
// summary in persisted rows.
const summaryPrefix = "Summary: "

// fallbackSummary is shown when a queued claim carries no summary reason.
const fallbackSummary = "Manual Review Required"

// Reconstruct builds a full ClaimView from a persisted queue record. The
// entry is consumed by value and never mutated; the result shares no
// backing arrays with it.
func Reconstruct(entry model.QueueEntry, assetBase string) model.ClaimView {
	files := entry.Files()

	view := model.ClaimView{
		Status:         "ok",
		FilesProcessed: files,
		Extracted:      entry.Extracted.Clone(),
	}

	id := entry.ID
	view.ClaimID = &id

	if len(files) > 0 {
		view.PreviewURL = ResolveFileURL(assetBase, files[0])
	}

	// The row's extracted data may not carry the total; fall back to the
	// summary column.
	if view.Extracted.TotalAmount == nil && entry.TotalAmount != nil {
		total := *entry.TotalAmount
		view.Extracted.TotalAmount = &total
	}

	reasons := make([]string, len(entry.DecisionReasons))
	copy(reasons, entry.DecisionReasons)

	var breakdown []model.BreakdownItem
	if view.Extracted.Breakdown != nil {
		breakdown = make([]model.BreakdownItem, len(view.Extracted.Breakdown))
		copy(breakdown, view.Extracted.Breakdown)
	}

	view.Decision = model.Decision{
		Kind:           model.ParseDecisionKind(entry.Status),
		Reasons:        reasons,
		SummaryText:    extractSummary(entry.DecisionReasons),
		Breakdown:      breakdown,
		MedicalContext: extractMedicalContext(entry.Extracted),
	}
	if entry.ApprovedAmount != nil {
		view.Decision.ApprovedAmount = *entry.ApprovedAmount
	}
	if entry.Confidence != nil {
		c := *entry.Confidence
		view.Decision.Confidence = &c
	}

	return view
}

// extractSummary scans the stored reasons for the first entry carrying the
// summary prefix and strips it. Rows written before summaries existed get
// the fixed fallback.
func extractSummary(reasons []string) string {
	for _, r := range reasons {
		if strings.HasPrefix(r, summaryPrefix) {
			return strings.TrimPrefix(r, summaryPrefix)
		}
	}
	return fallbackSummary
}

func extractMedicalContext(e model.ExtractedData) string {
	raw, ok := e.Extra["medical_context"]
	if !ok {
		return ""
	}
	// Stored as a bare JSON string; anything else is ignored.
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// ResolveFileURL turns a stored file reference into a retrievable URL.
// Absolute URLs pass through unchanged; anything else is a legacy relative
// filename joined onto the configured asset base.
func ResolveFileURL(assetBase, name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	base := strings.TrimSuffix(assetBase, "/")
	return base + "/" + strings.TrimPrefix(name, "/")
}
