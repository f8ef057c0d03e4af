// Package model defines the core domain models used throughout the application.
package model

import "encoding/json"

// DecisionKind is the adjudication outcome for a claim.
type DecisionKind string

// Decision kind constants.
const (
	DecisionApproved     DecisionKind = "APPROVED"
	DecisionRejected     DecisionKind = "REJECTED"
	DecisionManualReview DecisionKind = "MANUAL_REVIEW"
	DecisionPartial      DecisionKind = "PARTIAL"
)

// ParseDecisionKind normalizes a server status string into a DecisionKind.
// The legacy PARTIAL_APPROVAL spelling collapses into PARTIAL; anything
// unrecognized is treated as MANUAL_REVIEW so a bad payload never takes
// down the session.
func ParseDecisionKind(s string) DecisionKind {
	switch s {
	case "APPROVED":
		return DecisionApproved
	case "REJECTED":
		return DecisionRejected
	case "PARTIAL", "PARTIAL_APPROVAL":
		return DecisionPartial
	default:
		return DecisionManualReview
	}
}

// IsFinal reports whether the decision needs no further human action.
func (k DecisionKind) IsFinal() bool {
	return k == DecisionApproved || k == DecisionRejected || k == DecisionPartial
}

// BreakdownKind tags a row of the cost-calculation ledger.
type BreakdownKind string

// Breakdown row kinds.
const (
	BreakdownInfo      BreakdownKind = "info"
	BreakdownDeduction BreakdownKind = "deduction"
	BreakdownFinal     BreakdownKind = "final"
)

// BreakdownItem is one row of a claim's cost calculation. Amounts are
// informational magnitudes; the sign carries no meaning for display.
// Rows tagged final are the bottom-line total. Order is preserved as
// received, never sorted.
type BreakdownItem struct {
	Label  string        `json:"label"`
	Kind   BreakdownKind `json:"type"`
	Amount float64       `json:"amount"`
}

// Decision is the adjudication result attached to a claim.
type Decision struct {
	Kind           DecisionKind    `json:"decision"`
	ApprovedAmount float64         `json:"approved_amount"`
	Reasons        []string        `json:"reasons"`
	Confidence     *float64        `json:"confidence,omitempty"`
	Breakdown      []BreakdownItem `json:"breakdown,omitempty"`
	SummaryText    string          `json:"summary_text,omitempty"`
	MedicalContext string          `json:"medical_context,omitempty"`
}

// DisplayConfidence returns the confidence for rendering, defaulting to 0
// when the server omitted it.
func (d Decision) DisplayConfidence() float64 {
	if d.Confidence == nil {
		return 0
	}
	return *d.Confidence
}

// FinalTotal returns the sum of breakdown rows tagged final, and whether
// any such row exists.
func (d Decision) FinalTotal() (float64, bool) {
	var total float64
	found := false
	for _, item := range d.Breakdown {
		if item.Kind == BreakdownFinal {
			total += item.Amount
			found = true
		}
	}
	return total, found
}

// Clone returns a deep copy of the decision. Reasons and Breakdown do not
// share backing arrays with the receiver.
func (d Decision) Clone() Decision {
	out := d
	if d.Reasons != nil {
		out.Reasons = make([]string, len(d.Reasons))
		copy(out.Reasons, d.Reasons)
	}
	if d.Breakdown != nil {
		out.Breakdown = make([]BreakdownItem, len(d.Breakdown))
		copy(out.Breakdown, d.Breakdown)
	}
	if d.Confidence != nil {
		c := *d.Confidence
		out.Confidence = &c
	}
	return out
}

// UnmarshalJSON parses a decision, normalizing the kind through
// ParseDecisionKind so PARTIAL_APPROVAL and unknown statuses never leak
// past the boundary.
func (d *Decision) UnmarshalJSON(data []byte) error {
	type raw Decision
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*d = Decision(r)
	d.Kind = ParseDecisionKind(string(r.Kind))
	return nil
}
