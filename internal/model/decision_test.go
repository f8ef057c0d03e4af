package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecisionKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DecisionKind
	}{
		{name: "approved", input: "APPROVED", want: DecisionApproved},
		{name: "rejected", input: "REJECTED", want: DecisionRejected},
		{name: "manual review", input: "MANUAL_REVIEW", want: DecisionManualReview},
		{name: "partial", input: "PARTIAL", want: DecisionPartial},
		{name: "legacy partial approval collapses", input: "PARTIAL_APPROVAL", want: DecisionPartial},
		{name: "unknown status normalizes to review", input: "SOMETHING_NEW", want: DecisionManualReview},
		{name: "empty status normalizes to review", input: "", want: DecisionManualReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDecisionKind(tt.input))
		})
	}
}

func TestDecisionKind_IsFinal(t *testing.T) {
	assert.True(t, DecisionApproved.IsFinal())
	assert.True(t, DecisionRejected.IsFinal())
	assert.True(t, DecisionPartial.IsFinal())
	assert.False(t, DecisionManualReview.IsFinal())
}

func TestDecision_DisplayConfidence(t *testing.T) {
	var d Decision
	assert.Equal(t, 0.0, d.DisplayConfidence())

	c := 0.87
	d.Confidence = &c
	assert.Equal(t, 0.87, d.DisplayConfidence())
}

func TestDecision_FinalTotal(t *testing.T) {
	d := Decision{
		Breakdown: []BreakdownItem{
			{Label: "Claimed", Kind: BreakdownInfo, Amount: 1000},
			{Label: "Co-pay", Kind: BreakdownDeduction, Amount: -100},
			{Label: "Payable", Kind: BreakdownFinal, Amount: 900},
		},
	}

	total, ok := d.FinalTotal()
	assert.True(t, ok)
	assert.Equal(t, 900.0, total)

	empty := Decision{Breakdown: []BreakdownItem{{Label: "Claimed", Kind: BreakdownInfo, Amount: 10}}}
	_, ok = empty.FinalTotal()
	assert.False(t, ok)
}

func TestDecision_UnmarshalJSON_NormalizesKind(t *testing.T) {
	raw := `{"decision":"PARTIAL_APPROVAL","approved_amount":450,"reasons":["Sub-limit applied"]}`

	var d Decision
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	assert.Equal(t, DecisionPartial, d.Kind)
	assert.Equal(t, 450.0, d.ApprovedAmount)
	assert.Equal(t, []string{"Sub-limit applied"}, d.Reasons)
}

func TestDecision_Clone_Independent(t *testing.T) {
	c := 0.5
	d := Decision{
		Kind:       DecisionApproved,
		Reasons:    []string{"a", "b"},
		Breakdown:  []BreakdownItem{{Label: "x", Kind: BreakdownInfo, Amount: 1}},
		Confidence: &c,
	}

	clone := d.Clone()
	clone.Reasons[0] = "changed"
	clone.Breakdown[0].Label = "changed"
	*clone.Confidence = 0.9

	assert.Equal(t, "a", d.Reasons[0])
	assert.Equal(t, "x", d.Breakdown[0].Label)
	assert.Equal(t, 0.5, *d.Confidence)
}
