package arena

import "github.com/dshills/strand/internal/engine/tracking"

// Option configures an Arena created by NewWithOptions.
type Option func(*Arena)

// WithRegionCapacity sets the default capacity for new regions. Requests
// larger than this still get a region big enough to hold them. Values <= 0
// fall back to DefaultRegionCapacity.
func WithRegionCapacity(n int) Option {
	return func(a *Arena) {
		a.regionCap = n
	}
}

// WithPoison enables scribbling a poison pattern over logically freed
// payloads. Intended for tests and debugging.
func WithPoison(enabled bool) Option {
	return func(a *Arena) {
		a.poison = enabled
	}
}

// WithTracker registers the arena with a live-allocator tracker. The arena
// unregisters itself on Destroy.
func WithTracker(t *tracking.Tracker) Option {
	return func(a *Arena) {
		a.tracker = t
	}
}
