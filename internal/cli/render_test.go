package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plumline/claimdesk/internal/model"
)

func TestDecisionBadge(t *testing.T) {
	tests := []struct {
		kind model.DecisionKind
		want string
	}{
		{model.DecisionApproved, "APPROVED"},
		{model.DecisionRejected, "REJECTED"},
		{model.DecisionPartial, "PARTIAL"},
		{model.DecisionManualReview, "MANUAL REVIEW"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Contains(t, DecisionBadge(tt.kind), tt.want)
		})
	}
}

func TestRenderClaim(t *testing.T) {
	claimID := int64(42)
	total := 2500.0
	view := model.ClaimView{
		Status:  "ok",
		ClaimID: &claimID,
		Extracted: model.ExtractedData{
			TotalAmount: &total,
			Diagnosis:   "Dengue fever",
		},
		Decision: model.Decision{
			Kind:           model.DecisionPartial,
			ApprovedAmount: 1800,
			Reasons:        []string{"Manual Override by Amodini", "Room rent capped"},
			SummaryText:    "Partial approval after room-rent cap.",
		},
	}

	out := RenderClaim(view)

	assert.Contains(t, out, "PARTIAL")
	assert.Contains(t, out, "Claim #42")
	assert.Contains(t, out, "₹2500.00")
	assert.Contains(t, out, "₹1800.00")
	assert.Contains(t, out, "Room rent capped")
	assert.Contains(t, out, "[ADMIN]")
	assert.Contains(t, out, "Partial approval after room-rent cap.")
	assert.Contains(t, out, "Dengue fever")
}

func TestRenderClaim_InconsistentAmountWarning(t *testing.T) {
	claimID := int64(7)
	total := 1000.0
	view := model.ClaimView{
		ClaimID:   &claimID,
		Extracted: model.ExtractedData{TotalAmount: &total},
		Decision: model.Decision{
			Kind:           model.DecisionApproved,
			ApprovedAmount: 1500,
		},
	}

	assert.Contains(t, RenderClaim(view), "exceeds the claimed total")
}

func TestRenderClaim_MissingFinancialDocuments(t *testing.T) {
	claimID := int64(9)
	view := model.ClaimView{
		ClaimID: &claimID,
		Decision: model.Decision{
			Kind: model.DecisionApproved,
		},
	}

	assert.Contains(t, RenderClaim(view), "Missing financial documents")

	// A manual-review claim with no total renders no such notice.
	view.Decision.Kind = model.DecisionManualReview
	assert.NotContains(t, RenderClaim(view), "Missing financial documents")
}

func TestRenderBreakdown(t *testing.T) {
	out := RenderBreakdown([]model.BreakdownItem{
		{Label: "Claimed amount", Kind: model.BreakdownInfo, Amount: 2500},
		{Label: "Room rent cap", Kind: model.BreakdownDeduction, Amount: -700},
		{Label: "Approved", Kind: model.BreakdownFinal, Amount: 1800},
	})

	assert.Contains(t, out, "Claimed amount")
	// Deductions render as magnitudes.
	assert.Contains(t, out, "₹700.00")
	assert.Contains(t, out, "₹1800.00")
}

func TestRenderQueue(t *testing.T) {
	total := 2500.0
	entries := []model.QueueEntry{
		{
			ID:              7,
			Status:          "MANUAL_REVIEW",
			TotalAmount:     &total,
			FileName:        "bill.jpg,rx.pdf",
			DecisionReasons: []string{"Missing discharge summary"},
		},
	}

	out := RenderQueue(entries)

	assert.Contains(t, out, "#7")
	assert.Contains(t, out, "bill.jpg (+1 more)")
	assert.Contains(t, out, "Missing discharge summary")
}

func TestRenderQueue_Empty(t *testing.T) {
	assert.Contains(t, RenderQueue(nil), "No claims awaiting review")
}
