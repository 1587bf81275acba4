package bufferpool

import "errors"

// ErrNoFreeFrame is returned when every frame is pinned and the
// replacer has nothing left to evict.
var ErrNoFreeFrame = errors.New("bufferpool: no free frame available")
