// Package arena implements a region-chained bump allocator with a
// realloc-style resize-via-copy primitive.
//
// An Arena owns a singly-linked chain of regions, newest first. Allocation
// bumps a cursor inside the current region; when the region cannot satisfy a
// request, a new region is linked in front and the old one is left in place.
// Nothing is ever resized or freed individually, which keeps every slice
// handed out by the arena valid until Destroy is called. Bulk teardown is the
// only reclamation path.
//
// Each allocation records its requested size so that a later resize knows how
// many bytes to preserve when moving the payload to fresh storage:
//
//	a := arena.New(1 << 16)
//	buf := a.Alloc(64)
//	// ... fill buf ...
//	buf = a.AllocOrResize(buf, 256) // first 64 bytes carried over
//	a.Destroy()                     // releases the whole chain
//
// A process-wide default arena is available through Default for callers that
// do not manage their own. It follows the same lifecycle rules and must be
// destroyed explicitly by the owning process.
//
// Arenas are not goroutine-safe. Confine an arena, and any builders drawing
// from it, to a single logical owner.
package arena
