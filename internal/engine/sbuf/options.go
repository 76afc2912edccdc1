package sbuf

import "github.com/dshills/strand/internal/engine/arena"

// Option configures a Builder at construction.
type Option func(*Builder)

// WithArena attaches an allocation context. All dynamic storage for the
// builder is obtained from, and released to, this arena. Builders without
// an arena use the process default.
func WithArena(a *arena.Arena) Option {
	return func(b *Builder) {
		b.arena = a
	}
}
