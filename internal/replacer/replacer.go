// Package replacer implements the buffer pool's page-replacement policies.
//
// A Replacer tracks frame ids that are currently unpinned ("evictable")
// and picks a victim among them when the pool needs to reclaim a frame.
// It never sees pin counts directly: the buffer pool manager tells it
// when a frame becomes pinned (Pin) or unpinned (Unpin), and the
// replacer is the sole authority on which evictable frame to sacrifice.
package replacer

// Replacer is the eviction-policy contract shared by LRUReplacer and
// LRUKReplacer. All methods must be safe for concurrent use by one
// BufferPoolManager instance.
type Replacer interface {
	// Victim selects and removes the best frame to evict, returning
	// false if no evictable frame exists.
	Victim() (frameID int, ok bool)

	// Pin records that frameID is now pinned and must not be considered
	// for eviction until a matching Unpin.
	Pin(frameID int)

	// Unpin records that frameID is no longer pinned and becomes a
	// victim candidate.
	Unpin(frameID int)

	// Remove drops all tracking for frameID, evictable or not. Used when
	// a page is explicitly deleted rather than evicted.
	Remove(frameID int)

	// Size returns the number of frames currently evictable.
	Size() int
}

// Kind selects a Replacer implementation from configuration.
type Kind string

const (
	KindLRU  Kind = "lru"
	KindLRUK Kind = "lruk"
)

// New constructs the replacer named by kind. k is only meaningful for
// KindLRUK. Panics on an unrecognized kind: an unknown replacer name is
// a fatal configuration error, not a recoverable one.
func New(kind Kind, k int) Replacer {
	switch kind {
	case KindLRU:
		return NewLRUReplacer()
	case KindLRUK:
		return NewLRUKReplacer(k)
	default:
		panic("replacer: unknown replacer kind " + string(kind))
	}
}
