// Package sbuf provides a growable, NUL-terminated byte builder that can
// live in caller-supplied fixed storage or in arena-managed storage.
//
// A Builder tracks a content length and a capacity over a single backing
// block. The zero value is an empty dynamic builder whose first growth
// allocates from its arena (the process default when none is attached).
// FromFixed wraps a caller-owned array: the builder mutates it in place
// until an operation would overflow, then promotes itself by copying into
// arena storage and never touches the caller's array again. Promotion is
// one-way, and caller storage is never freed.
//
// Capacity grows by doubling with an exact-fit floor, so appending n bytes
// performs O(log n) underlying allocations. After every mutating call the
// content is NUL-terminated at data[len].
//
// Out-of-range splice arguments are contract violations and panic; the
// builder has no recoverable error mode for caller bugs. Out-of-memory is
// fatal. Builders are not goroutine-safe and must not outlive the arena
// backing them.
package sbuf
