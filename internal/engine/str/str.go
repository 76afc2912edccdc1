// Package str provides an unowned byte view type and allocation-free scan
// operations over it. A Str never owns its storage: sub-views alias the
// original bytes and become invalid if that storage is resized or freed.
package str

import (
	"bytes"
	"fmt"
	"sort"
)

// Str is a (pointer, length) view of byte storage. It may alias a builder's
// contents, another view, or a literal copied in via FromString.
type Str []byte

// FromString copies s into a fresh Str. Views over existing storage are
// made by slicing or by Builder.View.
func FromString(s string) Str {
	return Str(s)
}

// Equal reports whether s and t hold the same bytes.
func (s Str) Equal(t Str) bool {
	return bytes.Equal(s, t)
}

// EqualN reports whether the first n bytes of s and t match. If either view
// is shorter than n it reports false.
func (s Str) EqualN(t Str, n int) bool {
	if len(s) < n || len(t) < n {
		return false
	}
	return bytes.Equal(s[:n], t[:n])
}

// Compare orders two views byte-wise. When one view is a prefix of the
// other, the shorter view comes first.
func (s Str) Compare(t Str) int {
	return bytes.Compare(s, t)
}

// Sort orders views in place using Compare.
func Sort(views []Str) {
	sort.Slice(views, func(i, j int) bool {
		return views[i].Compare(views[j]) < 0
	})
}

// Substr returns the sub-view [start, end). Negative indices count from the
// end of the view. Indices out of range after normalization are a contract
// violation and panic.
func (s Str) Substr(start, end int) Str {
	if start < 0 {
		start += len(s)
	}
	if end < 0 {
		end += len(s)
	}
	if start < 0 || start > end || end > len(s) {
		panic(fmt.Sprintf("str: substr range [%d:%d) out of bounds for length %d", start, end, len(s)))
	}
	return s[start:end]
}

// Trim returns a sub-view with leading and trailing ASCII whitespace
// removed.
func (s Str) Trim() Str {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// IndexByte returns the index of the first occurrence of c, or -1.
func (s Str) IndexByte(c byte) int {
	return bytes.IndexByte(s, c)
}

// LastIndexByte returns the index of the last occurrence of c, or -1.
func (s Str) LastIndexByte(c byte) int {
	return bytes.LastIndexByte(s, c)
}

// Span returns the length of the leading run of bytes drawn from accept.
func (s Str) Span(accept Str) int {
	for i := 0; i < len(s); i++ {
		if accept.IndexByte(s[i]) < 0 {
			return i
		}
	}
	return len(s)
}

// CSpan returns the length of the leading run of bytes not in reject.
func (s Str) CSpan(reject Str) int {
	for i := 0; i < len(s); i++ {
		if reject.IndexByte(s[i]) >= 0 {
			return i
		}
	}
	return len(s)
}

// Find returns the index of the first occurrence of needle, or -1. An empty
// needle matches at index 0.
func (s Str) Find(needle Str) int {
	return bytes.Index(s, needle)
}

// Break returns the sub-view starting at the first byte found in accept,
// or an empty view at the end if none is found.
func (s Str) Break(accept Str) Str {
	return s[s.CSpan(accept):]
}

// Tokenize returns the next token of s, where tokens are runs of bytes
// separated by bytes from delim. The caller owns save, which must start at
// zero and be passed unchanged between calls on the same view. An empty
// token signals exhaustion.
func (s Str) Tokenize(delim Str, save *int) Str {
	rest := s[*save:]
	start := rest.Span(delim)
	rest = rest[start:]
	end := rest.CSpan(delim)
	*save += start + end
	return rest[:end]
}

// Tr replaces every occurrence of x with y, in place.
func (s Str) Tr(x, y byte) {
	for i := range s {
		if s[i] == x {
			s[i] = y
		}
	}
}

// ToUpper uppercases ASCII letters in place.
func (s Str) ToUpper() {
	for i := range s {
		if s[i] >= 'a' && s[i] <= 'z' {
			s[i] -= 'a' - 'A'
		}
	}
}

// ToLower lowercases ASCII letters in place.
func (s Str) ToLower() {
	for i := range s {
		if s[i] >= 'A' && s[i] <= 'Z' {
			s[i] += 'a' - 'A'
		}
	}
}

// Count returns the number of occurrences of c.
func (s Str) Count(c byte) int {
	return bytes.Count(s, []byte{c})
}

// HasPrefix reports whether s begins with prefix.
func (s Str) HasPrefix(prefix Str) bool {
	return s.EqualN(prefix, len(prefix))
}

// HasSuffix reports whether s ends with suffix.
func (s Str) HasSuffix(suffix Str) bool {
	if len(s) < len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):].EqualN(suffix, len(suffix))
}

// String returns a copy of the view's bytes as a Go string.
func (s Str) String() string {
	return string(s)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
