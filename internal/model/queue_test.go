package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueEntry_Files(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     []string
	}{
		{name: "comma joined legacy format", fileName: "a.jpg,b.jpg", want: []string{"a.jpg", "b.jpg"}},
		{name: "single file", fileName: "bill.pdf", want: []string{"bill.pdf"}},
		{name: "absent", fileName: "", want: []string{}},
		{name: "whitespace only", fileName: "   ", want: []string{}},
		{name: "spaces around names", fileName: "a.jpg, b.jpg", want: []string{"a.jpg", "b.jpg"}},
		{name: "trailing comma", fileName: "a.jpg,", want: []string{"a.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := QueueEntry{FileName: tt.fileName}
			assert.Equal(t, tt.want, entry.Files())
		})
	}
}

func TestQueueEntry_PrimaryReason(t *testing.T) {
	entry := QueueEntry{DecisionReasons: []string{"Needs ID proof", "Other reason"}}
	assert.Equal(t, "Needs ID proof", entry.PrimaryReason())

	assert.Equal(t, "", QueueEntry{}.PrimaryReason())
}

func TestQueueEntry_DisplayTotal(t *testing.T) {
	assert.Equal(t, 0.0, QueueEntry{}.DisplayTotal())

	total := 999.99
	assert.Equal(t, 999.99, QueueEntry{TotalAmount: &total}.DisplayTotal())
}
