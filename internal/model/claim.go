package model

import "encoding/json"

// LabResult is a single extracted lab measurement.
type LabResult struct {
	TestName    string `json:"test_name"`
	Result      string `json:"result"`
	NormalRange string `json:"normal_range"`
}

// Member is the policy-member sub-record extracted from claim documents.
type Member struct {
	MemberID string `json:"member_id,omitempty"`
	JoinDate string `json:"join_date,omitempty"`
}

// Hospital is the provider sub-record extracted from claim documents.
type Hospital struct {
	Name      string `json:"name,omitempty"`
	InNetwork bool   `json:"in_network,omitempty"`
}

// ExtractedData holds the fields pulled out of uploaded documents. The
// extraction service grows new fields over time, so unknown keys are kept
// verbatim in Extra and written back on marshal.
type ExtractedData struct {
	TotalAmount *float64
	Diagnosis   string
	LabResults  []LabResult
	Member      *Member
	Hospital    *Hospital
	Breakdown   []BreakdownItem
	Extra       map[string]json.RawMessage
}

// extractedKnown mirrors the typed fields of ExtractedData for JSON work.
type extractedKnown struct {
	TotalAmount *float64        `json:"total_amount,omitempty"`
	Diagnosis   string          `json:"diagnosis,omitempty"`
	LabResults  []LabResult     `json:"lab_results,omitempty"`
	Member      *Member         `json:"member,omitempty"`
	Hospital    *Hospital       `json:"hospital,omitempty"`
	Breakdown   []BreakdownItem `json:"breakdown,omitempty"`
}

var extractedKnownKeys = map[string]struct{}{
	"total_amount": {},
	"diagnosis":    {},
	"lab_results":  {},
	"member":       {},
	"hospital":     {},
	"breakdown":    {},
}

// UnmarshalJSON decodes the known fields and stashes everything else in
// Extra untouched.
func (e *ExtractedData) UnmarshalJSON(data []byte) error {
	var known extractedKnown
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	*e = ExtractedData{
		TotalAmount: known.TotalAmount,
		Diagnosis:   known.Diagnosis,
		LabResults:  known.LabResults,
		Member:      known.Member,
		Hospital:    known.Hospital,
		Breakdown:   known.Breakdown,
	}
	for k, v := range all {
		if _, ok := extractedKnownKeys[k]; ok {
			continue
		}
		if e.Extra == nil {
			e.Extra = make(map[string]json.RawMessage)
		}
		e.Extra[k] = v
	}
	return nil
}

// MarshalJSON writes the known fields plus any preserved unknown keys.
func (e ExtractedData) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(extractedKnown{
		TotalAmount: e.TotalAmount,
		Diagnosis:   e.Diagnosis,
		LabResults:  e.LabResults,
		Member:      e.Member,
		Hospital:    e.Hospital,
		Breakdown:   e.Breakdown,
	})
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	if merged == nil {
		merged = make(map[string]json.RawMessage)
	}
	for k, v := range e.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// DisplayTotal returns the claimed total for rendering, 0 when unknown.
func (e ExtractedData) DisplayTotal() float64 {
	if e.TotalAmount == nil {
		return 0
	}
	return *e.TotalAmount
}

// Clone returns a deep copy of the extracted data.
func (e ExtractedData) Clone() ExtractedData {
	out := e
	if e.TotalAmount != nil {
		v := *e.TotalAmount
		out.TotalAmount = &v
	}
	if e.LabResults != nil {
		out.LabResults = make([]LabResult, len(e.LabResults))
		copy(out.LabResults, e.LabResults)
	}
	if e.Member != nil {
		m := *e.Member
		out.Member = &m
	}
	if e.Hospital != nil {
		h := *e.Hospital
		out.Hospital = &h
	}
	if e.Breakdown != nil {
		out.Breakdown = make([]BreakdownItem, len(e.Breakdown))
		copy(out.Breakdown, e.Breakdown)
	}
	if e.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// ClaimView is the normalized representation of the claim currently on
// screen. It is built either from a fresh upload response or reconstructed
// from a persisted QueueEntry; both paths satisfy the same invariants.
//
// ClaimID is set if and only if the claim already exists server-side. A
// view with no ClaimID cannot be overridden: there is nothing to
// synchronize against.
type ClaimView struct {
	Status         string        `json:"status"`
	ClaimID        *int64        `json:"claim_id,omitempty"`
	FilesProcessed []string      `json:"files_processed,omitempty"`
	PreviewURL     string        `json:"-"`
	Extracted      ExtractedData `json:"extracted_data"`
	Decision       Decision      `json:"decision"`
}

// Persisted reports whether the claim exists server-side.
func (v ClaimView) Persisted() bool {
	return v.ClaimID != nil
}

// AmountConsistent reports whether the approved amount respects the
// claimed total. A violation is a data-quality issue for the UI to
// surface, never something to silently correct. MANUAL_REVIEW claims are
// exempt, and an unknown total cannot be checked.
func (v ClaimView) AmountConsistent() bool {
	if v.Decision.Kind == DecisionManualReview {
		return true
	}
	if v.Extracted.TotalAmount == nil {
		return true
	}
	return v.Decision.ApprovedAmount <= *v.Extracted.TotalAmount
}

// Clone returns a deep copy of the view.
func (v ClaimView) Clone() ClaimView {
	out := v
	if v.ClaimID != nil {
		id := *v.ClaimID
		out.ClaimID = &id
	}
	if v.FilesProcessed != nil {
		out.FilesProcessed = make([]string, len(v.FilesProcessed))
		copy(out.FilesProcessed, v.FilesProcessed)
	}
	out.Extracted = v.Extracted.Clone()
	out.Decision = v.Decision.Clone()
	return out
}
