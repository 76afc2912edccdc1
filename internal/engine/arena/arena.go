package arena

import (
	"encoding/binary"

	"github.com/dshills/strand/internal/engine/tracking"
)

// DefaultRegionCapacity is the capacity used for new regions when the
// request itself does not demand more (1 MiB).
const DefaultRegionCapacity = 1 << 20

const (
	alignment  = 8
	headerSize = 8

	// poisonByte is scribbled over logically freed payloads when poison
	// mode is enabled, to make use-after-free visible.
	poisonByte = 0xCD
)

// region is one contiguous block of raw storage with a bump cursor.
// A region is never resized in place; exhaustion links a new region in
// front of it and the leftover bytes are abandoned until teardown.
type region struct {
	buf  []byte
	used int
	prev *region
}

func (r *region) remaining() int { return len(r.buf) - r.used }

// Arena is an owning chain of regions supporting bump allocation and
// resize-via-copy. The zero value is a valid, empty arena; its first
// allocation creates a base region. Not goroutine-safe.
type Arena struct {
	cur       *region
	regionCap int
	poison    bool
	tracker   *tracking.Tracker
	trackID   tracking.ID
}

// New creates an arena whose base region has exactly capacity bytes.
func New(capacity int) *Arena {
	return &Arena{cur: &region{buf: make([]byte, capacity)}}
}

// NewWithOptions creates an empty arena configured by opts. No region is
// allocated until the first allocation request.
func NewWithOptions(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	if a.tracker != nil {
		a.trackID = a.tracker.Register("arena")
	}
	return a
}

// Alloc returns a zeroed slice of size bytes carved from the arena.
// It is shorthand for AllocOrResize(nil, size).
func (a *Arena) Alloc(size int) []byte {
	return a.AllocOrResize(nil, size)
}

// AllocOrResize is the central allocation primitive.
//
// With a nil prev and size zero it does nothing and returns nil. With a nil
// prev and size > 0 it is a plain allocation. With a non-nil prev and
// size > 0 it allocates fresh storage and copies min(len(prev), size) bytes
// from prev; prev must be a slice previously returned by this arena. With a
// non-nil prev and size zero it is a logical free: bump regions cannot
// reclaim individual allocations, so the bytes stay put (poison mode
// scribbles them to flush out use-after-free).
//
// Returned slices remain valid, and their contents stable, until Destroy is
// called, even after later requests push new regions onto the chain.
func (a *Arena) AllocOrResize(prev []byte, size int) []byte {
	if size < 0 {
		panic("arena: negative allocation size")
	}
	if size == 0 {
		if prev != nil && a.poison {
			for i := range prev {
				prev[i] = poisonByte
			}
		}
		return nil
	}

	required := alignUp(size+headerSize, alignment)
	if a.cur == nil || a.cur.remaining() < required {
		regionCap := a.regionCap
		if regionCap <= 0 {
			regionCap = DefaultRegionCapacity
		}
		if required > regionCap {
			regionCap = required
		}
		a.cur = &region{buf: make([]byte, regionCap), prev: a.cur}
	}

	r := a.cur
	binary.LittleEndian.PutUint64(r.buf[r.used:], uint64(size))
	r.used += headerSize
	data := r.buf[r.used : r.used+size : r.used+size]
	r.used += alignUp(size, alignment)

	copy(data, prev)
	return data
}

// Destroy releases the entire region chain and resets the arena to its empty
// state. Every slice the arena ever returned is invalid afterwards. Safe to
// call on an arena that was never allocated from; the arena is reusable and
// behaves as if newly zero-initialized.
func (a *Arena) Destroy() {
	for r := a.cur; r != nil; {
		next := r.prev
		r.buf = nil
		r.prev = nil
		r = next
	}
	a.cur = nil
	if a.tracker != nil {
		a.tracker.Unregister(a.trackID)
		a.tracker = nil
		a.trackID = tracking.ID{}
	}
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
