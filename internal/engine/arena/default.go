package arena

// defaultArena backs allocations for callers that do not supply their own
// arena. It starts empty and grows on first use.
var defaultArena Arena

// Default returns the process-wide default arena. The owning process must
// destroy it explicitly before exit; teardown is not automatic.
func Default() *Arena {
	return &defaultArena
}
