package sbuf

import (
	"fmt"

	"github.com/dshills/strand/internal/engine/arena"
	"github.com/dshills/strand/internal/engine/str"
)

// storageMode distinguishes caller-owned fixed storage from arena-owned
// dynamic storage. The zero value is dynamic so that a zero Builder is a
// valid empty dynamic builder.
type storageMode uint8

const (
	modeDynamic storageMode = iota
	modeFixed
)

// Builder is a length-tracked, NUL-terminated byte sequence over fixed or
// dynamic storage. See the package documentation for lifecycle rules.
type Builder struct {
	data  []byte // backing storage; len(data) is the capacity
	n     int    // content length; data[n] holds the terminator
	mode  storageMode
	arena *arena.Arena // nil means the process default
}

// New creates an empty dynamic builder configured by opts. No storage is
// allocated until the first growth.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromFixed wraps caller-owned storage without allocating. The builder
// mutates buf in place until it would overflow, then promotes to dynamic
// storage; buf is never freed or touched after promotion. One byte of buf
// is reserved for the terminator, so the usable content capacity is
// len(buf)-1.
func FromFixed(buf []byte, opts ...Option) *Builder {
	b := New(opts...)
	b.data = buf
	b.mode = modeFixed
	return b
}

// Len returns the current content length in bytes.
func (b *Builder) Len() int { return b.n }

// Cap returns the total capacity of the backing storage.
func (b *Builder) Cap() int { return len(b.data) }

// IsFixed reports whether the builder still lives in caller-owned storage.
func (b *Builder) IsFixed() bool { return b.mode == modeFixed }

// View returns an unowned view of the current content. It aliases the
// builder's storage and is valid only until the next mutating call.
func (b *Builder) View() str.Str {
	return str.Str(b.data[:b.n])
}

// String returns a copy of the current content.
func (b *Builder) String() string {
	return string(b.data[:b.n])
}

// Reserve ensures the backing storage holds at least capacity bytes. A
// fixed builder that is already large enough is left untouched; otherwise
// it promotes to dynamic storage.
func (b *Builder) Reserve(capacity int) {
	if len(b.data) >= capacity {
		return
	}
	b.grow(capacity)
}

// Append copies s after the current content and re-terminates.
func (b *Builder) Append(s str.Str) {
	b.ensure(b.n + len(s) + 1)
	copy(b.data[b.n:], s)
	b.n += len(s)
	b.data[b.n] = 0
}

// AppendString copies a Go string after the current content.
func (b *Builder) AppendString(s string) {
	b.Append(str.Str(s))
}

// AppendByte appends a single byte.
func (b *Builder) AppendByte(c byte) {
	b.ensure(b.n + 2)
	b.data[b.n] = c
	b.n++
	b.data[b.n] = 0
}

// Printf appends formatted text. The output is formatted in full before any
// bytes are committed, so it can never be truncated against unknown
// remaining space.
func (b *Builder) Printf(format string, args ...any) {
	b.AppendString(fmt.Sprintf(format, args...))
}

// Replace overwrites the first occurrence of needle with repl, shifting the
// tail to fit and growing if repl is longer. An empty or absent needle is a
// silent no-op; only the first match is replaced.
func (b *Builder) Replace(needle, repl str.Str) {
	if len(needle) == 0 {
		return
	}
	idx := b.View().Find(needle)
	if idx < 0 {
		return
	}
	b.Splice(idx, idx+len(needle), repl)
}

// Splice removes the content range [start, end) and inserts repl in its
// place, shifting the tail. Negative indices count from the end of the
// content. Indices out of range after normalization are a contract
// violation and panic.
func (b *Builder) Splice(start, end int, repl str.Str) {
	if start < 0 {
		start += b.n
	}
	if end < 0 {
		end += b.n
	}
	if start < 0 || start > end || end > b.n {
		panic(fmt.Sprintf("sbuf: splice range [%d:%d) out of bounds for length %d", start, end, b.n))
	}
	newLen := b.n - (end - start) + len(repl)
	b.ensure(newLen + 1)
	copy(b.data[start+len(repl):], b.data[end:b.n])
	copy(b.data[start:], repl)
	b.n = newLen
	b.data[b.n] = 0
}

// Reset drops the content but keeps the storage.
func (b *Builder) Reset() {
	b.n = 0
	if len(b.data) > 0 {
		b.data[0] = 0
	}
}

// Destroy releases dynamic storage back to the builder's arena and resets
// the builder to its empty state. For a fixed builder only the length is
// reset; the caller's storage was never owned.
func (b *Builder) Destroy() {
	if b.mode == modeFixed {
		b.n = 0
		return
	}
	if b.data != nil {
		b.allocator().AllocOrResize(b.data, 0)
	}
	b.data = nil
	b.n = 0
}

// allocator returns the allocation context for growth: the attached arena,
// or the process default.
func (b *Builder) allocator() *arena.Arena {
	if b.arena != nil {
		return b.arena
	}
	return arena.Default()
}

// ensure grows the storage to hold at least need bytes, doubling the
// current capacity when that is larger than the exact fit.
func (b *Builder) ensure(need int) {
	if len(b.data) >= need {
		return
	}
	newCap := 2 * len(b.data)
	if newCap < need {
		newCap = need
	}
	b.grow(newCap)
}

// grow moves the builder into dynamic storage of exactly capacity bytes,
// preserving the current content. Fixed builders promote here: the new
// block comes from the arena and the caller's storage is abandoned intact.
func (b *Builder) grow(capacity int) {
	if b.mode == modeFixed {
		newData := b.allocator().Alloc(capacity)
		copy(newData, b.data[:b.n])
		b.data = newData
		b.mode = modeDynamic
	} else {
		b.data = b.allocator().AllocOrResize(b.data, capacity)
	}
	if b.n < len(b.data) {
		b.data[b.n] = 0
	}
}
