package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumline/claimdesk/internal/model"
)

func pendingEntries() []model.QueueEntry {
	return []model.QueueEntry{
		{ID: 7, Status: "MANUAL_REVIEW", FileName: "a.jpg,b.jpg"},
		{ID: 3, Status: "MANUAL_REVIEW"},
		{ID: 12, Status: "MANUAL_REVIEW"},
	}
}

func TestStore_LoadReplacesWholesale(t *testing.T) {
	s := NewStore()
	s.Load(pendingEntries())
	require.Equal(t, 3, s.Len())

	s.Load([]model.QueueEntry{{ID: 99, Status: "MANUAL_REVIEW"}})

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(99), entries[0].ID)
}

func TestStore_PreservesServerOrder(t *testing.T) {
	s := NewStore()
	s.Load(pendingEntries())

	entries := s.Entries()
	// Server order, never client-sorted.
	assert.Equal(t, int64(7), entries[0].ID)
	assert.Equal(t, int64(3), entries[1].ID)
	assert.Equal(t, int64(12), entries[2].ID)
}

func TestStore_QuickResolve(t *testing.T) {
	s := NewStore()
	s.Load(pendingEntries())

	s.QuickResolve(3)

	assert.Equal(t, 2, s.Len())
	assert.Nil(t, s.Find(3))
	// Remaining order intact.
	entries := s.Entries()
	assert.Equal(t, int64(7), entries[0].ID)
	assert.Equal(t, int64(12), entries[1].ID)
}

func TestStore_QuickResolveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.Load(pendingEntries())

	s.QuickResolve(555)

	assert.Equal(t, 3, s.Len())
}

func TestStore_RemoveIfPresent(t *testing.T) {
	s := NewStore()
	s.Load(pendingEntries())

	s.RemoveIfPresent(7)
	assert.Nil(t, s.Find(7))

	// Absent id is silent.
	s.RemoveIfPresent(7)
	assert.Equal(t, 2, s.Len())
}

func TestStore_Find(t *testing.T) {
	s := NewStore()
	s.Load(pendingEntries())

	entry := s.Find(7)
	require.NotNil(t, entry)
	assert.Equal(t, "a.jpg,b.jpg", entry.FileName)

	// Find returns a copy, not an alias into the store.
	entry.FileName = "changed"
	assert.Equal(t, "a.jpg,b.jpg", s.Find(7).FileName)
}

func TestStore_EntriesIsACopy(t *testing.T) {
	s := NewStore()
	s.Load(pendingEntries())

	entries := s.Entries()
	entries[0].ID = 1000

	assert.Equal(t, int64(7), s.Entries()[0].ID)
}
