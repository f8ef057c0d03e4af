package model

import (
	"strings"
	"time"
)

// QueueEntry is a lightweight summary of a persisted claim awaiting manual
// review. It mirrors the remote store's row shape, including the legacy
// comma-joined FileName column.
type QueueEntry struct {
	ID              int64         `json:"id"`
	Status          string        `json:"status"`
	MemberID        string        `json:"member_id,omitempty"`
	TotalAmount     *float64      `json:"total_amount,omitempty"`
	ApprovedAmount  *float64      `json:"approved_amount,omitempty"`
	FileName        string        `json:"file_name,omitempty"`
	CreatedAt       *time.Time    `json:"created_at,omitempty"`
	DecisionReasons []string      `json:"decision_reasons,omitempty"`
	Confidence      *float64      `json:"confidence_score,omitempty"`
	Extracted       ExtractedData `json:"extracted_data,omitempty"`
}

// Files splits the legacy comma-joined FileName column into individual
// stored filenames. Empty or absent values yield an empty slice.
func (q QueueEntry) Files() []string {
	if strings.TrimSpace(q.FileName) == "" {
		return []string{}
	}
	parts := strings.Split(q.FileName, ",")
	files := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files
}

// PrimaryReason returns the first pending reason, or empty when none.
func (q QueueEntry) PrimaryReason() string {
	if len(q.DecisionReasons) == 0 {
		return ""
	}
	return q.DecisionReasons[0]
}

// DisplayTotal returns the claimed total for rendering, 0 when unknown.
func (q QueueEntry) DisplayTotal() float64 {
	if q.TotalAmount == nil {
		return 0
	}
	return *q.TotalAmount
}
