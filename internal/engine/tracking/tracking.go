// Package tracking provides a registry of live allocators for leak
// diagnostics. Owners register on construction and unregister on teardown;
// anything still registered at process exit (or at the end of a test) was
// never destroyed.
package tracking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ID uniquely identifies a registered allocator.
type ID uuid.UUID

// String returns the canonical string form of the ID.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the ID is the zero value (never registered).
func (id ID) IsZero() bool {
	return id == ID{}
}

// Entry describes one live registration.
type Entry struct {
	ID    ID
	Label string
	Since time.Time
}

// Tracker is a registry of live allocators. Safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	live map[ID]Entry
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{live: make(map[ID]Entry)}
}

// Register records a new live allocator and returns its ID.
func (t *Tracker) Register(label string) ID {
	id := ID(uuid.New())
	t.mu.Lock()
	defer t.mu.Unlock()
	t.live[id] = Entry{ID: id, Label: label, Since: time.Now()}
	return id
}

// Unregister removes a registration. Unknown or zero IDs are ignored.
func (t *Tracker) Unregister(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.live, id)
}

// Len returns the number of live registrations.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Live returns a snapshot of all live registrations.
func (t *Tracker) Live() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	entries := make([]Entry, 0, len(t.live))
	for _, e := range t.live {
		entries = append(entries, e)
	}
	return entries
}
