// Package queue holds the in-memory collection of claims awaiting manual
// review. Order is whatever the server returned; the store never sorts.
package queue

import "github.com/plumline/claimdesk/internal/model"

// Store is the ordered set of pending-review claim summaries. It is
// request/response driven alongside the session controller and is safe for
// the single-goroutine access model the UI guarantees.
type Store struct {
	entries []model.QueueEntry
}

// NewStore creates an empty queue store.
func NewStore() *Store {
	return &Store{entries: []model.QueueEntry{}}
}

// Load replaces the queue wholesale with the given entries. Prior contents
// are discarded, never merged.
func (s *Store) Load(entries []model.QueueEntry) {
	s.entries = make([]model.QueueEntry, len(entries))
	copy(s.entries, entries)
}

// Entries returns a copy of the queue in server order.
func (s *Store) Entries() []model.QueueEntry {
	out := make([]model.QueueEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of pending entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Find returns the entry with the given id, or nil when absent.
func (s *Store) Find(id int64) *model.QueueEntry {
	for i := range s.entries {
		if s.entries[i].ID == id {
			entry := s.entries[i]
			return &entry
		}
	}
	return nil
}

// QuickResolve drops the entry with the given id immediately. This is a
// local-only triage action: it contacts nothing and trusts the caller's
// intent. Resolving an id not present is a silent no-op.
func (s *Store) QuickResolve(id int64) {
	s.remove(id)
}

// RemoveIfPresent drops the entry after a confirmed full override, so a
// reviewer returning to the queue no longer sees the resolved claim.
func (s *Store) RemoveIfPresent(id int64) {
	s.remove(id)
}

func (s *Store) remove(id int64) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
